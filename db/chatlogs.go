package db

import (
	"time"

	"tonybot/models"

	"github.com/jinzhu/gorm"
)

// ChatLogStore is the thin persistence client for the chat_logs table.
// Every operation is a remote call; errors come back as values and the
// caller decides how loud to be about them.
type ChatLogStore struct {
	DB *gorm.DB
}

func NewChatLogStore(database *gorm.DB) *ChatLogStore {
	return &ChatLogStore{DB: database}
}

// Insert writes one exchange and returns the stored row (id and created_at
// filled in by the store).
func (s *ChatLogStore) Insert(entry models.ChatLog) (models.ChatLog, error) {
	if err := s.DB.Create(&entry).Error; err != nil {
		return models.ChatLog{}, err
	}
	return entry, nil
}

// DeleteOlderThan removes every row with created_at strictly before cutoff
// and reports how many rows went away. Safe to call repeatedly.
func (s *ChatLogStore) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := s.DB.Where("created_at < ?", cutoff).Delete(&models.ChatLog{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Count returns the exact number of rows in the table.
func (s *ChatLogStore) Count() (int64, error) {
	var total int64
	if err := s.DB.Model(&models.ChatLog{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Recent returns up to limit rows ordered by created_at descending.
func (s *ChatLogStore) Recent(limit int) ([]models.ChatLog, error) {
	var logs []models.ChatLog
	if err := s.DB.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
