package storage

import "time"

// FireRecord is one reminder fire: when it happened, how many tasks
// were pending, and their titles at fire time.
type FireRecord struct {
	ID           string
	FiredAt      time.Time
	PendingCount int
	Titles       []string
}
