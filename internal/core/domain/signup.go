package domain

// SignupRecord is a persisted notification-interest submission. Records are
// append-only: there is no update or delete path, and duplicate emails are
// allowed (one row per submission, not per address).
type SignupRecord struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
}
