package models

import (
	"time"

	"github.com/lib/pq"
)

// SoapNote is the clinical document generated exactly once when a session
// ends. Emotions keeps the deduplicated set the note was composed from so
// the transcript view can surface it without re-joining message analyses.
type SoapNote struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	SessionID   int            `gorm:"uniqueIndex;not null" json:"session_id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	Emotions    pq.StringArray `gorm:"type:text[]" json:"emotions"`
	GeneratedAt time.Time      `gorm:"not null" json:"generated_at"`
}

func (SoapNote) TableName() string { return "soap_notes" }
