package domain

// AnalysisTask is the snapshot handed to a background analysis run. It owns
// copies of the submission fields so a run never touches live request state.
type AnalysisTask struct {
	ArticleID   int64
	HashID      string
	SubmitterID int64
	Title       string
	Content     string
}

// Verdict is the write-back applied once per analysis run.
type Verdict struct {
	ArticleID int64
	Score     float64
	Discard   bool
	LogAction string
	Notice    Notification
}

// Notification is a message queued for the submitting user.
type Notification struct {
	UserID  int64
	Message string
}

// AnalysisEvent is published when a background run completes.
type AnalysisEvent struct {
	HashID    string            `json:"hash_id"`
	ArticleID int64             `json:"article_id"`
	Score     float64           `json:"score"`
	Discarded bool              `json:"discarded"`
	Report    CredibilityReport `json:"report"`
}
