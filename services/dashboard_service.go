package services

import (
	"errors"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// DashboardService aggregates the home-screen view: today's nutrition,
// the running week's workouts, active goals and the latest measurements.
type DashboardService struct {
	db            *gorm.DB
	nutrition     *NutritionService
	workouts      *WorkoutService
	progress      *ProgressService
	notifications *NotificationService
}

func NewDashboardService(
	db *gorm.DB,
	nutrition *NutritionService,
	workouts *WorkoutService,
	progress *ProgressService,
	notifications *NotificationService,
) *DashboardService {
	return &DashboardService{
		db:            db,
		nutrition:     nutrition,
		workouts:      workouts,
		progress:      progress,
		notifications: notifications,
	}
}

type GoalOverview struct {
	ID                 uint    `json:"id"`
	Title              string  `json:"title"`
	TargetValue        float64 `json:"target_value"`
	CurrentValue       float64 `json:"current_value"`
	Unit               string  `json:"unit"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type DashboardSummary struct {
	Date           string           `json:"date"`
	Nutrition      DailyTotals      `json:"nutrition"`
	Week           WeekSummary      `json:"week"`
	ActiveGoals    []GoalOverview   `json:"active_goals"`
	LatestProgress *models.Progress `json:"latest_progress,omitempty"`
	UnreadCount    int64            `json:"unread_notifications"`
}

func (s *DashboardService) Summary(userID uint) (*DashboardSummary, error) {
	now := time.Now()

	totals, err := s.nutrition.TodayTotals(userID)
	if err != nil {
		return nil, err
	}

	week, err := s.workouts.WeekSummary(userID, weekStart(now))
	if err != nil {
		return nil, err
	}

	var goals []models.Goal
	if err := s.db.
		Where("user_id = ? AND status = ?", userID, models.GoalStatusActive).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	overviews := make([]GoalOverview, 0, len(goals))
	for _, g := range goals {
		overviews = append(overviews, GoalOverview{
			ID:                 g.ID,
			Title:              g.Title,
			TargetValue:        g.TargetValue,
			CurrentValue:       g.CurrentValue,
			Unit:               g.Unit,
			ProgressPercentage: round2(ProgressPercentage(g.CurrentValue, g.TargetValue)),
		})
	}

	latest, err := s.progress.Latest(userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	unread, err := s.notifications.UnreadCount(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Date:           now.Format("2006-01-02"),
		Nutrition:      totals,
		Week:           week,
		ActiveGoals:    overviews,
		LatestProgress: latest,
		UnreadCount:    unread,
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// weekStart is the most recent Monday at local midnight.
func weekStart(t time.Time) time.Time {
	d := dayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
