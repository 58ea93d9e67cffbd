package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type WorkoutService struct {
	db        *gorm.DB
	exercises *ExerciseService
}

func NewWorkoutService(db *gorm.DB, exercises *ExerciseService) *WorkoutService {
	return &WorkoutService{db: db, exercises: exercises}
}

type RoutineExerciseRequest struct {
	ExerciseID  uint `json:"exercise_id" binding:"required"`
	Sets        int  `json:"sets" binding:"required,gt=0"`
	Reps        int  `json:"reps" binding:"required,gt=0"`
	RestSeconds int  `json:"rest_seconds" binding:"gte=0"`
}

type RoutineInput struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	IsPublic    bool                     `json:"is_public"`
	Exercises   []RoutineExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

type SessionExerciseRequest struct {
	ExerciseID uint    `json:"exercise_id" binding:"required"`
	Sets       int     `json:"sets" binding:"required,gt=0"`
	Reps       int     `json:"reps" binding:"required,gt=0"`
	WeightKg   float64 `json:"weight_kg" binding:"gte=0"`
}

type SessionInput struct {
	RoutineID      *uint                    `json:"routine_id"`
	Date           time.Time                `json:"date"`
	DurationMin    float64                  `json:"duration_min" binding:"gte=0"`
	CaloriesBurned float64                  `json:"calories_burned" binding:"gte=0"`
	Notes          string                   `json:"notes"`
	Exercises      []SessionExerciseRequest `json:"exercises" binding:"dive"`
}

// ---------- Routines ----------

func (s *WorkoutService) CreateRoutine(userID uint, in RoutineInput) (*models.WorkoutRoutine, error) {
	routine := models.WorkoutRoutine{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		IsPublic:    in.IsPublic,
	}
	for i, r := range in.Exercises {
		ex, err := s.exercises.Get(userID, r.ExerciseID)
		if err != nil {
			return nil, err
		}
		routine.Exercises = append(routine.Exercises, models.RoutineExercise{
			ExerciseID:   r.ExerciseID,
			ExerciseName: ex.Name,
			Position:     i + 1,
			Sets:         r.Sets,
			Reps:         r.Reps,
			RestSeconds:  r.RestSeconds,
		})
	}
	if err := s.db.Create(&routine).Error; err != nil {
		return nil, err
	}
	return &routine, nil
}

func (s *WorkoutService) GetRoutine(userID, id uint) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ? AND (user_id = ? OR is_public = ?)", id, userID, true).
		First(&routine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

func (s *WorkoutService) ListRoutines(userID uint) ([]models.WorkoutRoutine, error) {
	var routines []models.WorkoutRoutine
	err := s.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&routines).Error
	return routines, err
}

func (s *WorkoutService) UpdateRoutine(userID, id uint, in RoutineInput) (*models.WorkoutRoutine, error) {
	var routine models.WorkoutRoutine
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&routine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		routine.Name = in.Name
		routine.Description = in.Description
		routine.IsPublic = in.IsPublic
		if err := tx.Save(&routine).Error; err != nil {
			return err
		}
		if err := tx.Where("workout_routine_id = ?", routine.ID).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		for i, r := range in.Exercises {
			ex, err := s.exercises.Get(userID, r.ExerciseID)
			if err != nil {
				return err
			}
			re := models.RoutineExercise{
				WorkoutRoutineID: routine.ID,
				ExerciseID:       r.ExerciseID,
				ExerciseName:     ex.Name,
				Position:         i + 1,
				Sets:             r.Sets,
				Reps:             r.Reps,
				RestSeconds:      r.RestSeconds,
			}
			if err := tx.Create(&re).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetRoutine(userID, routine.ID)
}

func (s *WorkoutService) DeleteRoutine(userID, id uint) error {
	var routine models.WorkoutRoutine
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&routine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_routine_id = ?", routine.ID).Delete(&models.RoutineExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&routine).Error
	})
}

// ---------- Sessions ----------

func (s *WorkoutService) LogSession(userID uint, in SessionInput) (*models.WorkoutSession, error) {
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	session := models.WorkoutSession{
		UserID:         userID,
		RoutineID:      in.RoutineID,
		Date:           date,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
	}
	for _, r := range in.Exercises {
		ex, err := s.exercises.Get(userID, r.ExerciseID)
		if err != nil {
			return nil, err
		}
		session.Exercises = append(session.Exercises, models.SessionExercise{
			ExerciseID:   r.ExerciseID,
			ExerciseName: ex.Name,
			Sets:         r.Sets,
			Reps:         r.Reps,
			WeightKg:     r.WeightKg,
		})
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *WorkoutService) GetSession(userID, id uint) (*models.WorkoutSession, error) {
	var session models.WorkoutSession
	err := s.db.
		Preload("Exercises").
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (s *WorkoutService) ListSessions(userID uint, from, to *time.Time) ([]models.WorkoutSession, error) {
	q := s.db.Preload("Exercises").Where("user_id = ?", userID)
	if from != nil && to != nil {
		q = q.Where("date >= ? AND date < ?", *from, *to)
	}
	var sessions []models.WorkoutSession
	err := q.Order("date DESC").Find(&sessions).Error
	return sessions, err
}

func (s *WorkoutService) DeleteSession(userID, id uint) error {
	var session models.WorkoutSession
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_session_id = ?", session.ID).Delete(&models.SessionExercise{}).Error; err != nil {
			return err
		}
		return tx.Delete(&session).Error
	})
}

// WeekSummary aggregates the running week for the dashboard.
type WeekSummary struct {
	Sessions       int     `json:"sessions"`
	TotalMinutes   float64 `json:"total_minutes"`
	CaloriesBurned float64 `json:"calories_burned"`
}

func (s *WorkoutService) WeekSummary(userID uint, weekStart time.Time) (WeekSummary, error) {
	from := dayStart(weekStart)
	to := from.AddDate(0, 0, 7)
	sessions, err := s.ListSessions(userID, &from, &to)
	if err != nil {
		return WeekSummary{}, err
	}
	var out WeekSummary
	for _, sess := range sessions {
		out.Sessions++
		out.TotalMinutes += sess.DurationMin
		out.CaloriesBurned += sess.CaloriesBurned
	}
	return out, nil
}
