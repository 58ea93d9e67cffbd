package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

type ExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"omitempty,oneof=strength cardio flexibility balance"`
	MuscleGroup string `json:"muscle_group"`
	Equipment   string `json:"equipment"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=beginner intermediate advanced"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"is_public"`
}

func (s *ExerciseService) List(userID uint, query, category, muscleGroup string) ([]models.Exercise, error) {
	q := s.db.Where("is_public = ? OR created_by = ?", true, userID)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if muscleGroup != "" {
		q = q.Where("muscle_group = ?", muscleGroup)
	}
	var exercises []models.Exercise
	err := q.Order("name ASC").Limit(100).Find(&exercises).Error
	return exercises, err
}

func (s *ExerciseService) Get(userID, id uint) (*models.Exercise, error) {
	var ex models.Exercise
	err := s.db.
		Where("id = ? AND (is_public = ? OR created_by = ?)", id, true, userID).
		First(&ex).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ex, nil
}

func (s *ExerciseService) Create(userID uint, in ExerciseInput) (*models.Exercise, error) {
	ex := models.Exercise{
		Name:        in.Name,
		Category:    in.Category,
		MuscleGroup: in.MuscleGroup,
		Equipment:   in.Equipment,
		Difficulty:  in.Difficulty,
		Description: in.Description,
		IsPublic:    false,
		CreatedBy:   userID,
	}
	if in.IsPublic != nil {
		ex.IsPublic = *in.IsPublic
	}
	if err := s.db.Create(&ex).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *ExerciseService) Update(userID, id uint, in ExerciseInput) (*models.Exercise, error) {
	var ex models.Exercise
	if err := s.db.Where("id = ? AND created_by = ?", id, userID).First(&ex).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ex.Name = in.Name
	ex.Category = in.Category
	ex.MuscleGroup = in.MuscleGroup
	ex.Equipment = in.Equipment
	ex.Difficulty = in.Difficulty
	ex.Description = in.Description
	if in.IsPublic != nil {
		ex.IsPublic = *in.IsPublic
	}
	if err := s.db.Save(&ex).Error; err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *ExerciseService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND created_by = ?", id, userID).Delete(&models.Exercise{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
