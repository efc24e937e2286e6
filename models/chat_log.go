package models

import "time"

// ChatLog is one row per chat exchange: the visitor's message, the
// assistant's reply and best-effort request metadata. Rows are append-only;
// nothing updates them after insert and only the retention sweep deletes them.
type ChatLog struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserMessage string     `gorm:"type:text;not null" json:"user_message"`
	AIResponse  string     `gorm:"type:text;not null" json:"ai_response"`
	UserIP      string     `gorm:"default:''" json:"user_ip"`
	UserAgent   string     `gorm:"default:''" json:"user_agent"`
	SessionID   string     `gorm:"default:'';index" json:"session_id"`
	CreatedAt   *time.Time `gorm:"index" json:"created_at"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
