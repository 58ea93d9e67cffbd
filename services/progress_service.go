package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

type MeasurementInput struct {
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
	WeightKg   float64 `json:"weight_kg" binding:"gte=0"`
	BodyFatPct float64 `json:"body_fat_pct" binding:"gte=0,lte=100"`
	ChestCm    float64 `json:"chest_cm" binding:"gte=0"`
	WaistCm    float64 `json:"waist_cm" binding:"gte=0"`
	HipsCm     float64 `json:"hips_cm" binding:"gte=0"`
	ArmsCm     float64 `json:"arms_cm" binding:"gte=0"`
	ThighsCm   float64 `json:"thighs_cm" binding:"gte=0"`
	Notes      string  `json:"notes"`
}

// Upsert records measurements by (user, date @ local midnight); logging the
// same day twice overwrites.
func (s *ProgressService) Upsert(userID uint, in MeasurementInput) (*models.Progress, error) {
	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, ErrInvalidValue
		}
		date = parsed
	}
	start := dayStart(date)

	p := models.Progress{
		UserID:     userID,
		Date:       start,
		WeightKg:   in.WeightKg,
		BodyFatPct: in.BodyFatPct,
		ChestCm:    in.ChestCm,
		WaistCm:    in.WaistCm,
		HipsCm:     in.HipsCm,
		ArmsCm:     in.ArmsCm,
		ThighsCm:   in.ThighsCm,
		Notes:      in.Notes,
	}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, start).
		Assign(p).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProgressService) List(userID uint) ([]models.Progress, error) {
	var rows []models.Progress
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *ProgressService) Latest(userID uint) (*models.Progress, error) {
	var p models.Progress
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *ProgressService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Progress{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
