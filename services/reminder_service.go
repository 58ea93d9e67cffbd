package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type ReminderService struct {
	db *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db}
}

type ReminderInput struct {
	Type      string `json:"type" binding:"required,oneof=workout meal hydration weigh_in"`
	Message   string `json:"message"`
	TimeOfDay string `json:"time_of_day" binding:"required,len=5"` // "HH:MM"
	Weekdays  string `json:"weekdays"`                             // "mon,wed,fri"
	Enabled   *bool  `json:"enabled"`
}

func (s *ReminderService) Create(userID uint, in ReminderInput) (*models.Reminder, error) {
	r := models.Reminder{
		UserID:    userID,
		Type:      in.Type,
		Message:   in.Message,
		TimeOfDay: in.TimeOfDay,
		Weekdays:  in.Weekdays,
		Enabled:   true,
	}
	if in.Enabled != nil {
		r.Enabled = *in.Enabled
	}
	if err := s.db.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReminderService) List(userID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := s.db.
		Where("user_id = ?", userID).
		Order("time_of_day ASC").
		Find(&reminders).Error
	return reminders, err
}

func (s *ReminderService) Update(userID, id uint, in ReminderInput) (*models.Reminder, error) {
	var r models.Reminder
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	r.Type = in.Type
	r.Message = in.Message
	r.TimeOfDay = in.TimeOfDay
	r.Weekdays = in.Weekdays
	if in.Enabled != nil {
		r.Enabled = *in.Enabled
	}
	if err := s.db.Save(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReminderService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Reminder{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
