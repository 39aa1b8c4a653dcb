package models

// SyncResult summarizes what one run did.
type SyncResult struct {
	RunID          string `json:"run_id"`
	Added          int    `json:"added"`
	MarkedComplete int    `json:"marked_complete"`
	Skipped        int    `json:"skipped"`
	Failed         int    `json:"failed"`
	DryRun         bool   `json:"dry_run"`
}
