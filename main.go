package main

import "github.com/alexbotov/turk/cmd"

func main() {
	cmd.Execute()
}
