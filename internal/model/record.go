package model

import "time"

// TranslationRecord is one phrase/translation pair. Records are append-only:
// the pipeline writes each one exactly once after a successful completion and
// never updates or deletes it.
type TranslationRecord struct {
	ID          int64
	Phrase      string
	Translation string
	Model       string
	Source      string
	CreatedAt   time.Time
}
