package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

type GoalInput struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" binding:"omitempty,oneof=weight strength endurance nutrition habit"`
	TargetValue float64    `json:"target_value" binding:"gte=0"`
	Unit        string     `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
	Milestones  []struct {
		Title       string  `json:"title" binding:"required"`
		TargetValue float64 `json:"target_value" binding:"gte=0"`
	} `json:"milestones" binding:"dive"`
}

type ProgressResult struct {
	Goal                *models.Goal       `json:"goal"`
	ProgressPercentage  float64            `json:"progress_percentage"`
	CompletedMilestones []models.Milestone `json:"completed_milestones"`
	GoalCompleted       bool               `json:"goal_completed"`
}

// ProgressPercentage caps at 100 and treats a zero target as 0% complete
// rather than dividing by zero.
func ProgressPercentage(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target * 100
	if p > 100 {
		return 100
	}
	return p
}

// ApplyProgress runs the whole progress update against an in-memory goal:
// appends a history record, overwrites the current value, flips milestones
// whose threshold the update crossed from below, and completes the goal
// when the target is reached. It touches no storage; UpdateProgress
// persists the outcome.
func ApplyProgress(goal *models.Goal, value float64, notes string, at time.Time) (*ProgressResult, error) {
	if goal.Status != models.GoalStatusActive {
		return nil, ErrGoalNotActive
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, ErrInvalidValue
	}

	previous := goal.CurrentValue
	goal.History = append(goal.History, models.GoalProgress{
		GoalID:        goal.ID,
		Date:          at,
		Value:         value,
		PreviousValue: previous,
		Notes:         notes,
	})
	goal.CurrentValue = value

	res := &ProgressResult{Goal: goal, CompletedMilestones: []models.Milestone{}}

	// A milestone fires when the update reaches or passes its threshold
	// from below. Milestones are independent; one update can cross several.
	// The achieved flag is monotonic and never re-fires.
	for i := range goal.Milestones {
		m := &goal.Milestones[i]
		if !m.Achieved && previous < m.TargetValue && m.TargetValue <= value {
			m.Achieved = true
			d := at
			m.AchievedDate = &d
			res.CompletedMilestones = append(res.CompletedMilestones, *m)
		}
	}

	if goal.CurrentValue >= goal.TargetValue && goal.Status == models.GoalStatusActive {
		goal.Status = models.GoalStatusCompleted
		d := at
		goal.CompletedAt = &d
		res.GoalCompleted = true
	}

	res.ProgressPercentage = ProgressPercentage(goal.CurrentValue, goal.TargetValue)
	return res, nil
}

// UpdateProgress records a new observation for a goal owned by userID.
// Notification fan-out is best effort: a failed notification never fails
// the update.
func (s *GoalService) UpdateProgress(userID, goalID uint, value float64, notes string, date *time.Time) (*ProgressResult, error) {
	var goal models.Goal
	err := s.db.
		Preload("Milestones").
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	at := time.Now()
	if date != nil {
		at = *date
	}

	res, err := ApplyProgress(&goal, value, notes, at)
	if err != nil {
		return nil, err
	}
	record := goal.History[len(goal.History)-1]

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		for _, m := range res.CompletedMilestones {
			if err := tx.Model(&models.Milestone{}).
				Where("id = ?", m.ID).
				Updates(map[string]interface{}{"achieved": true, "achieved_date": m.AchievedDate}).Error; err != nil {
				return err
			}
		}
		return tx.Model(&goal).
			Select("current_value", "status", "completed_at").
			Updates(models.Goal{
				CurrentValue: goal.CurrentValue,
				Status:       goal.Status,
				CompletedAt:  goal.CompletedAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	for _, m := range res.CompletedMilestones {
		EmitNotification(userID, "milestone", "Milestone reached",
			fmt.Sprintf("You reached %q on goal %q.", m.Title, goal.Title))
	}
	if res.GoalCompleted {
		EmitNotification(userID, "goal_completed", "Goal completed",
			fmt.Sprintf("Congratulations — you completed %q!", goal.Title))
	}

	return res, nil
}

func (s *GoalService) Create(userID uint, in GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		TargetValue: in.TargetValue,
		Unit:        in.Unit,
		Deadline:    in.Deadline,
		Status:      models.GoalStatusActive,
	}
	for _, m := range in.Milestones {
		goal.Milestones = append(goal.Milestones, models.Milestone{
			Title:       m.Title,
			TargetValue: m.TargetValue,
		})
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Get(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	err := s.db.
		Preload("Milestones").
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("date ASC") }).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) List(userID uint, status string) ([]models.Goal, error) {
	q := s.db.Preload("Milestones").Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var goals []models.Goal
	err := q.Order("created_at DESC").Find(&goals).Error
	return goals, err
}

func (s *GoalService) Update(userID, goalID uint, in GoalInput) (*models.Goal, error) {
	goal, err := s.Get(userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.Title = in.Title
	goal.Description = in.Description
	goal.Category = in.Category
	goal.TargetValue = in.TargetValue
	goal.Unit = in.Unit
	goal.Deadline = in.Deadline
	if err := s.db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// SetStatus is the manual override path. The automatic completed transition
// in UpdateProgress only ever fires from active; manual edits may move
// between any of the allowed states.
func (s *GoalService) SetStatus(userID, goalID uint, status string) (*models.Goal, error) {
	switch status {
	case models.GoalStatusActive, models.GoalStatusPaused,
		models.GoalStatusCompleted, models.GoalStatusCancelled:
	default:
		return nil, ErrInvalidValue
	}
	goal, err := s.Get(userID, goalID)
	if err != nil {
		return nil, err
	}
	goal.Status = status
	if status == models.GoalStatusCompleted && goal.CompletedAt == nil {
		now := time.Now()
		goal.CompletedAt = &now
	}
	if err := s.db.Model(goal).Select("status", "completed_at").
		Updates(models.Goal{Status: goal.Status, CompletedAt: goal.CompletedAt}).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Delete(userID, goalID uint) error {
	goal, err := s.Get(userID, goalID)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Milestone{}).Error; err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.GoalProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(goal).Error
	})
}
