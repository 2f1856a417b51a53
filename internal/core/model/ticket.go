package model

import "fmt"

// Status labels a ticket's position in the support workflow.
type Status string

const (
	StatusOpen       Status = "open"
	StatusPending    Status = "pending"
	StatusResolved   Status = "resolved"
	StatusFollowedUp Status = "followed-up"
)

// ParseStatus validates a user-supplied status label.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusPending, StatusResolved, StatusFollowedUp:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

type Ticket struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Status  Status `json:"status"`
}

// ScoredTicket pairs a ticket with its similarity to the query.
// Scores are cosine similarities in [-1, 1]; a zero-magnitude vector
// on either side pins the score to 0.
type ScoredTicket struct {
	Score  float64 `json:"score"`
	Ticket Ticket  `json:"ticket"`
}
