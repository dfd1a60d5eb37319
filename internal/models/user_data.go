package models

import "time"

// UserData is one raw submission: a text entry, an uploaded recording,
// third-party feedback, or an activity-log line. Immutable once written.
type UserData struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"index;not null" json:"user_id"`
	DataType  string    `gorm:"not null" json:"data_type"`
	Content   string    `json:"content"`
	FilePath  string    `json:"file_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserData) TableName() string { return "user_data" }
