package turk

import "context"

// Operation declarations. Each spec is pure data: the wire operation name,
// its required and optional scalar keys, the structured fragments to append,
// and the result key expected in the response envelope. The exported methods
// below are thin table-driven glue over Client.call.
var (
	opGetAccountBalance = operationSpec{
		name:      "GetAccountBalance",
		resultKey: "GetAccountBalanceResult",
	}

	opCreateHIT = operationSpec{
		name: "CreateHIT",
		required: []string{
			"Title", "Description",
			"AssignmentDurationInSeconds", "LifetimeInSeconds",
		},
		optional: []string{
			"MaxAssignments", "AutoApprovalDelayInSeconds", "Question",
			"HITLayoutId", "RequesterAnnotation", "UniqueRequestToken",
			"ResponseGroup",
		},
		fragments: []fragmentFunc{
			rewardFragment,
			optionalFragment("Keywords", keywordsFragment),
			optionalFragment("QualificationRequirement", qualificationFragment),
			optionalFragment("HITLayoutParameter", layoutFragment),
		},
		resultKey: "HIT",
	}

	opRegisterHITType = operationSpec{
		name: "RegisterHITType",
		required: []string{
			"Title", "Description", "AssignmentDurationInSeconds",
		},
		optional: []string{"AutoApprovalDelayInSeconds"},
		fragments: []fragmentFunc{
			rewardFragment,
			optionalFragment("Keywords", keywordsFragment),
			optionalFragment("QualificationRequirement", qualificationFragment),
		},
		resultKey: "RegisterHITTypeResult",
	}

	opChangeHITTypeOfHIT = operationSpec{
		name:      "ChangeHITTypeOfHIT",
		required:  []string{"HITId", "HITTypeId"},
		resultKey: "ChangeHITTypeOfHITResult",
	}

	opGetHIT = operationSpec{
		name:      "GetHIT",
		required:  []string{"HITId"},
		optional:  []string{"ResponseGroup"},
		resultKey: "HIT",
	}

	opDisableHIT = operationSpec{
		name:      "DisableHIT",
		required:  []string{"HITId"},
		resultKey: "DisableHITResult",
	}

	opDisposeHIT = operationSpec{
		name:      "DisposeHIT",
		required:  []string{"HITId"},
		resultKey: "DisposeHITResult",
	}

	opExtendHIT = operationSpec{
		name:     "ExtendHIT",
		required: []string{"HITId"},
		optional: []string{
			"MaxAssignmentsIncrement", "ExpirationIncrementInSeconds",
			"UniqueRequestToken",
		},
		resultKey: "ExtendHITResult",
	}

	opForceExpireHIT = operationSpec{
		name:      "ForceExpireHIT",
		required:  []string{"HITId"},
		resultKey: "ForceExpireHITResult",
	}

	opSetHITAsReviewing = operationSpec{
		name:      "SetHITAsReviewing",
		required:  []string{"HITId"},
		optional:  []string{"Revert"},
		resultKey: "SetHITAsReviewingResult",
	}

	opGetReviewableHITs = operationSpec{
		name: "GetReviewableHITs",
		optional: []string{
			"HITTypeId", "Status", "SortProperty", "SortDirection",
			"PageSize", "PageNumber",
		},
		resultKey: "GetReviewableHITsResult",
	}

	opSearchHITs = operationSpec{
		name: "SearchHITs",
		optional: []string{
			"SortProperty", "SortDirection", "PageSize", "PageNumber",
			"ResponseGroup",
		},
		resultKey: "SearchHITsResult",
	}

	opGetAssignment = operationSpec{
		name:      "GetAssignment",
		required:  []string{"AssignmentId"},
		optional:  []string{"ResponseGroup"},
		resultKey: "GetAssignmentResult",
	}

	opGetAssignmentsForHIT = operationSpec{
		name:     "GetAssignmentsForHIT",
		required: []string{"HITId"},
		optional: []string{
			"AssignmentStatus", "SortProperty", "SortDirection",
			"PageSize", "PageNumber", "ResponseGroup",
		},
		resultKey: "GetAssignmentsForHITResult",
	}

	opApproveAssignment = operationSpec{
		name:      "ApproveAssignment",
		required:  []string{"AssignmentId"},
		optional:  []string{"RequesterFeedback"},
		resultKey: "ApproveAssignmentResult",
	}

	opApproveRejectedAssignment = operationSpec{
		name:      "ApproveRejectedAssignment",
		required:  []string{"AssignmentId"},
		optional:  []string{"RequesterFeedback"},
		resultKey: "ApproveRejectedAssignmentResult",
	}

	opRejectAssignment = operationSpec{
		name:      "RejectAssignment",
		required:  []string{"AssignmentId"},
		optional:  []string{"RequesterFeedback"},
		resultKey: "RejectAssignmentResult",
	}

	opGrantBonus = operationSpec{
		name:      "GrantBonus",
		required:  []string{"WorkerId", "AssignmentId", "Reason"},
		optional:  []string{"UniqueRequestToken"},
		fragments: []fragmentFunc{rewardFragment},
		resultKey: "GrantBonusResult",
	}

	opGetBonusPayments = operationSpec{
		name:      "GetBonusPayments",
		optional:  []string{"HITId", "AssignmentId", "PageSize", "PageNumber"},
		resultKey: "GetBonusPaymentsResult",
	}

	opBlockWorker = operationSpec{
		name:      "BlockWorker",
		required:  []string{"WorkerId", "Reason"},
		resultKey: "BlockWorkerResult",
	}

	opUnblockWorker = operationSpec{
		name:      "UnblockWorker",
		required:  []string{"WorkerId"},
		optional:  []string{"Reason"},
		resultKey: "UnblockWorkerResult",
	}

	opGetBlockedWorkers = operationSpec{
		name:      "GetBlockedWorkers",
		optional:  []string{"PageSize", "PageNumber"},
		resultKey: "GetBlockedWorkersResult",
	}

	opNotifyWorkers = operationSpec{
		name:      "NotifyWorkers",
		required:  []string{"Subject", "MessageText", "WorkerId"},
		resultKey: "NotifyWorkersResult",
	}

	opCreateQualificationType = operationSpec{
		name:     "CreateQualificationType",
		required: []string{"Name", "Description", "QualificationTypeStatus"},
		optional: []string{
			"RetryDelayInSeconds", "Test", "AnswerKey",
			"TestDurationInSeconds", "AutoGranted", "AutoGrantedValue",
		},
		fragments: []fragmentFunc{
			optionalFragment("Keywords", keywordsFragment),
		},
		resultKey: "QualificationType",
	}

	opGetQualificationType = operationSpec{
		name:      "GetQualificationType",
		required:  []string{"QualificationTypeId"},
		resultKey: "QualificationType",
	}

	opUpdateQualificationType = operationSpec{
		name:     "UpdateQualificationType",
		required: []string{"QualificationTypeId"},
		optional: []string{
			"Description", "QualificationTypeStatus", "Test", "AnswerKey",
			"TestDurationInSeconds", "RetryDelayInSeconds",
			"AutoGranted", "AutoGrantedValue",
		},
		resultKey: "QualificationType",
	}

	opDisposeQualificationType = operationSpec{
		name:      "DisposeQualificationType",
		required:  []string{"QualificationTypeId"},
		resultKey: "DisposeQualificationTypeResult",
	}

	opSearchQualificationTypes = operationSpec{
		name:     "SearchQualificationTypes",
		required: []string{"MustBeRequestable"},
		optional: []string{
			"Query", "SortProperty", "SortDirection", "PageSize",
			"PageNumber", "MustBeOwnedByCaller",
		},
		resultKey: "SearchQualificationTypesResult",
	}

	opGetQualificationRequests = operationSpec{
		name: "GetQualificationRequests",
		optional: []string{
			"QualificationTypeId", "SortProperty", "SortDirection",
			"PageSize", "PageNumber",
		},
		resultKey: "GetQualificationRequestsResult",
	}

	opGrantQualification = operationSpec{
		name:      "GrantQualification",
		required:  []string{"QualificationRequestId"},
		optional:  []string{"IntegerValue"},
		resultKey: "GrantQualificationResult",
	}

	opRejectQualificationRequest = operationSpec{
		name:      "RejectQualificationRequest",
		required:  []string{"QualificationRequestId"},
		optional:  []string{"Reason"},
		resultKey: "RejectQualificationRequestResult",
	}

	opAssignQualification = operationSpec{
		name:      "AssignQualification",
		required:  []string{"QualificationTypeId", "WorkerId"},
		optional:  []string{"IntegerValue", "SendNotification"},
		resultKey: "AssignQualificationResult",
	}

	opRevokeQualification = operationSpec{
		name:      "RevokeQualification",
		required:  []string{"SubjectId", "QualificationTypeId"},
		optional:  []string{"Reason"},
		resultKey: "RevokeQualificationResult",
	}

	opUpdateQualificationScore = operationSpec{
		name:      "UpdateQualificationScore",
		required:  []string{"QualificationTypeId", "SubjectId", "IntegerValue"},
		resultKey: "UpdateQualificationScoreResult",
	}

	opGetQualificationScore = operationSpec{
		name:      "GetQualificationScore",
		required:  []string{"QualificationTypeId", "SubjectId"},
		resultKey: "Qualification",
	}

	opSetHITTypeNotification = operationSpec{
		name:      "SetHITTypeNotification",
		required:  []string{"HITTypeId"},
		optional:  []string{"Active"},
		fragments: []fragmentFunc{notificationFragment},
		resultKey: "SetHITTypeNotificationResult",
	}

	opSendTestEventNotification = operationSpec{
		name:      "SendTestEventNotification",
		required:  []string{"TestEventType"},
		fragments: []fragmentFunc{notificationFragment},
		resultKey: "SendTestEventNotificationResult",
	}

	opGetFileUploadURL = operationSpec{
		name:      "GetFileUploadURL",
		required:  []string{"AssignmentId", "QuestionIdentifier"},
		resultKey: "GetFileUploadURLResult",
	}
)

// GetAccountBalance retrieves the requester's available balance.
func (c *Client) GetAccountBalance(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetAccountBalance, params)
}

// CreateHIT creates a new HIT from explicit properties and a Reward.
func (c *Client) CreateHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opCreateHIT, params)
}

// RegisterHITType registers a reusable HIT type.
func (c *Client) RegisterHITType(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opRegisterHITType, params)
}

// ChangeHITTypeOfHIT moves an existing HIT to a different HIT type.
func (c *Client) ChangeHITTypeOfHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opChangeHITTypeOfHIT, params)
}

// GetHIT retrieves a HIT by ID.
func (c *Client) GetHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetHIT, params)
}

// DisableHIT removes a HIT from the marketplace and disposes of it.
func (c *Client) DisableHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opDisableHIT, params)
}

// DisposeHIT disposes of a HIT whose assignments are all processed.
func (c *Client) DisposeHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opDisposeHIT, params)
}

// ExtendHIT adds assignments or lifetime to an existing HIT.
func (c *Client) ExtendHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opExtendHIT, params)
}

// ForceExpireHIT expires a HIT immediately.
func (c *Client) ForceExpireHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opForceExpireHIT, params)
}

// SetHITAsReviewing toggles a HIT between Reviewable and Reviewing.
func (c *Client) SetHITAsReviewing(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opSetHITAsReviewing, params)
}

// GetReviewableHITs lists HITs with Reviewable or Reviewing status.
func (c *Client) GetReviewableHITs(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetReviewableHITs, params)
}

// SearchHITs lists all of the requester's HITs.
func (c *Client) SearchHITs(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opSearchHITs, params)
}

// GetAssignment retrieves a submitted assignment.
func (c *Client) GetAssignment(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetAssignment, params)
}

// GetAssignmentsForHIT lists the assignments for a HIT.
func (c *Client) GetAssignmentsForHIT(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetAssignmentsForHIT, params)
}

// ApproveAssignment approves a submitted assignment and pays the worker.
func (c *Client) ApproveAssignment(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opApproveAssignment, params)
}

// ApproveRejectedAssignment reverses a prior rejection.
func (c *Client) ApproveRejectedAssignment(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opApproveRejectedAssignment, params)
}

// RejectAssignment rejects a submitted assignment.
func (c *Client) RejectAssignment(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opRejectAssignment, params)
}

// GrantBonus pays a bonus (the Reward parameter) to a worker.
func (c *Client) GrantBonus(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGrantBonus, params)
}

// GetBonusPayments lists bonuses paid for a HIT or assignment.
func (c *Client) GetBonusPayments(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetBonusPayments, params)
}

// BlockWorker prevents a worker from accepting the requester's HITs.
func (c *Client) BlockWorker(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opBlockWorker, params)
}

// UnblockWorker lifts a block placed with BlockWorker.
func (c *Client) UnblockWorker(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opUnblockWorker, params)
}

// GetBlockedWorkers lists workers currently blocked by the requester.
func (c *Client) GetBlockedWorkers(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetBlockedWorkers, params)
}

// NotifyWorkers sends an email to up to 100 workers.
func (c *Client) NotifyWorkers(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opNotifyWorkers, params)
}

// CreateQualificationType creates a new qualification type.
func (c *Client) CreateQualificationType(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opCreateQualificationType, params)
}

// GetQualificationType retrieves a qualification type by ID.
func (c *Client) GetQualificationType(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetQualificationType, params)
}

// UpdateQualificationType modifies attributes of a qualification type.
func (c *Client) UpdateQualificationType(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opUpdateQualificationType, params)
}

// DisposeQualificationType disposes of a qualification type.
func (c *Client) DisposeQualificationType(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opDisposeQualificationType, params)
}

// SearchQualificationTypes searches qualification types by query string.
func (c *Client) SearchQualificationTypes(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opSearchQualificationTypes, params)
}

// GetQualificationRequests lists pending qualification requests.
func (c *Client) GetQualificationRequests(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetQualificationRequests, params)
}

// GrantQualification grants a pending qualification request.
func (c *Client) GrantQualification(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGrantQualification, params)
}

// RejectQualificationRequest rejects a pending qualification request.
func (c *Client) RejectQualificationRequest(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opRejectQualificationRequest, params)
}

// AssignQualification gives a worker a qualification directly.
func (c *Client) AssignQualification(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opAssignQualification, params)
}

// RevokeQualification revokes a worker's qualification.
func (c *Client) RevokeQualification(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opRevokeQualification, params)
}

// UpdateQualificationScore changes the value of a granted qualification.
func (c *Client) UpdateQualificationScore(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opUpdateQualificationScore, params)
}

// GetQualificationScore retrieves a worker's qualification value.
func (c *Client) GetQualificationScore(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetQualificationScore, params)
}

// SetHITTypeNotification attaches a notification specification to a HIT
// type.
func (c *Client) SetHITTypeNotification(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opSetHITTypeNotification, params)
}

// SendTestEventNotification asks the service to deliver a test event to a
// notification destination.
func (c *Client) SendTestEventNotification(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opSendTestEventNotification, params)
}

// GetFileUploadURL returns a temporary URL for a FileUploadAnswer.
func (c *Client) GetFileUploadURL(ctx context.Context, params Params) (*Node, error) {
	return c.call(ctx, opGetFileUploadURL, params)
}
