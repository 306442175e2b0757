package stripprefix

// Status records what the files phase did with a computed transformation.
type Status string

const (
	StatusApplied          Status = "applied"
	StatusDryRun           Status = "dry_run"
	StatusSkippedCollision Status = "skipped_collision"
)

// Transformation is one page whose destination or URL has a clean form.
type Transformation struct {
	SrcPath string `json:"src_path"`
	OldDest string `json:"old_dest"`
	OldURL  string `json:"old_url"`
	NewDest string `json:"new_dest"`
	NewURL  string `json:"new_url"`
	Status  Status `json:"status"`
}
