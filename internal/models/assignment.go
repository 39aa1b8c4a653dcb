package models

type Assignment struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	DueAt string `json:"due_at"` // RFC 3339 UTC, empty when the course sets no due date
}

type Submission struct {
	WorkflowState WorkflowState `json:"workflow_state"`
}

// WorkflowState is Canvas's submission lifecycle tag.
type WorkflowState string

const (
	WorkflowStateUnsubmitted   WorkflowState = "unsubmitted"
	WorkflowStateSubmitted     WorkflowState = "submitted"
	WorkflowStateGraded        WorkflowState = "graded"
	WorkflowStatePendingReview WorkflowState = "pending_review"
)

func (ws WorkflowState) String() string {
	return string(ws)
}

// Complete reports whether the state counts as a finished submission.
func (ws WorkflowState) Complete() bool {
	switch ws {
	case WorkflowStateSubmitted, WorkflowStateGraded, WorkflowStatePendingReview:
		return true
	default:
		return false
	}
}
