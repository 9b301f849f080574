package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexbotov/turk/internal/audit"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the requester account balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var auditSvc *audit.Service
		if cfg.Database.DSN != "" {
			db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("failed to open audit database: %w", err)
			}
			defer db.Close()
			auditSvc = audit.New(db)
		}

		client := newClient(cfg)
		tree, callErr := client.GetAccountBalance(cmd.Context(), nil)
		if logErr := auditSvc.LogCall(cmd.Context(), "GetAccountBalance", client.Mode(), callErr); logErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "audit write failed: %v\n", logErr)
		}
		if callErr != nil {
			return callErr
		}

		balance := tree.Text("GetAccountBalanceResult", "AvailableBalance", "FormattedPrice")
		if balance == "" {
			balance = tree.Text("GetAccountBalanceResult", "AvailableBalance", "Amount")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", balance, client.Mode())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
