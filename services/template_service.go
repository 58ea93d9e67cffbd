package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

func (s *TemplateService) List(level string) ([]models.WorkoutTemplate, error) {
	q := s.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
	if level != "" {
		q = q.Where("level = ?", level)
	}
	var templates []models.WorkoutTemplate
	err := q.Order("name ASC").Find(&templates).Error
	return templates, err
}

func (s *TemplateService) Get(id uint) (*models.WorkoutTemplate, error) {
	var tpl models.WorkoutTemplate
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&tpl, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tpl, nil
}

// CopyToRoutine clones a template into the user's own routines.
func (s *TemplateService) CopyToRoutine(userID, templateID uint) (*models.WorkoutRoutine, error) {
	tpl, err := s.Get(templateID)
	if err != nil {
		return nil, err
	}
	routine := models.WorkoutRoutine{
		UserID:      userID,
		Name:        tpl.Name,
		Description: tpl.Description,
	}
	for _, te := range tpl.Exercises {
		routine.Exercises = append(routine.Exercises, models.RoutineExercise{
			ExerciseID:   te.ExerciseID,
			ExerciseName: te.ExerciseName,
			Position:     te.Position,
			Sets:         te.Sets,
			Reps:         te.Reps,
		})
	}
	if err := s.db.Create(&routine).Error; err != nil {
		return nil, err
	}
	return &routine, nil
}
