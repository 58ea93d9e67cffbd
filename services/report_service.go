package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportService struct {
	db        *gorm.DB
	nutrition *NutritionService
	workouts  *WorkoutService
	progress  *ProgressService
}

func NewReportService(db *gorm.DB, nutrition *NutritionService, workouts *WorkoutService, progress *ProgressService) *ReportService {
	return &ReportService{db: db, nutrition: nutrition, workouts: workouts, progress: progress}
}

type ReportInput struct {
	Type string `json:"type" binding:"required,oneof=nutrition workouts progress"`
	From string `json:"from" binding:"required"` // YYYY-MM-DD
	To   string `json:"to" binding:"required"`
}

// Generate creates the report row and finishes it in the background: the
// summary is gathered, serialized and uploaded to S3, then the row flips to
// completed. Callers poll GET /reports for the artifact URL.
func (s *ReportService) Generate(userID uint, in ReportInput) (*models.Report, error) {
	from, err := time.Parse("2006-01-02", in.From)
	if err != nil {
		return nil, ErrInvalidValue
	}
	to, err := time.Parse("2006-01-02", in.To)
	if err != nil || to.Before(from) {
		return nil, ErrInvalidValue
	}

	report := models.Report{
		UserID: userID,
		Type:   in.Type,
		From:   from,
		To:     to,
		Status: "pending",
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, err
	}

	go s.finish(report.ID, userID, in.Type, from, to)
	return &report, nil
}

func (s *ReportService) finish(reportID, userID uint, reportType string, from, to time.Time) {
	// generation is intentionally simulated; the artifact itself is real
	time.Sleep(2 * time.Second)

	summary, err := s.buildSummary(userID, reportType, from, to)
	if err != nil {
		s.markFailed(reportID, err)
		return
	}
	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		s.markFailed(reportID, err)
		return
	}

	key := fmt.Sprintf("reports/%d/%s-%s.json", userID, reportType, uuid.NewString())
	url, err := utils.UploadJSONToS3(key, raw)
	if err != nil {
		s.markFailed(reportID, err)
		return
	}

	now := time.Now()
	if err := s.db.Model(&models.Report{}).Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"status":       "completed",
			"artifact_url": url,
			"completed_at": now,
		}).Error; err != nil {
		log.Printf("report %d finalize failed: %v", reportID, err)
	}
}

func (s *ReportService) markFailed(reportID uint, cause error) {
	log.Printf("report %d generation failed: %v", reportID, cause)
	_ = s.db.Model(&models.Report{}).Where("id = ?", reportID).
		Update("status", "failed").Error
}

func (s *ReportService) buildSummary(userID uint, reportType string, from, to time.Time) (map[string]interface{}, error) {
	out := map[string]interface{}{
		"type": reportType,
		"from": from.Format("2006-01-02"),
		"to":   to.Format("2006-01-02"),
	}

	switch reportType {
	case "nutrition":
		entries, err := s.nutrition.ListEntries(userID, from, to)
		if err != nil {
			return nil, err
		}
		var cals, prot, carbs, fat float64
		for _, e := range entries {
			cals += e.TotalCalories
			prot += e.TotalProtein
			carbs += e.TotalCarbohydrates
			fat += e.TotalFat
		}
		out["days_logged"] = len(entries)
		out["total_calories"] = cals
		out["total_protein"] = prot
		out["total_carbohydrates"] = carbs
		out["total_fat"] = fat
	case "workouts":
		f, t := dayStart(from), dayStart(to).AddDate(0, 0, 1)
		sessions, err := s.workouts.ListSessions(userID, &f, &t)
		if err != nil {
			return nil, err
		}
		var minutes, burned float64
		for _, sess := range sessions {
			minutes += sess.DurationMin
			burned += sess.CaloriesBurned
		}
		out["sessions"] = len(sessions)
		out["total_minutes"] = minutes
		out["calories_burned"] = burned
	case "progress":
		rows, err := s.progress.List(userID)
		if err != nil {
			return nil, err
		}
		kept := make([]models.Progress, 0, len(rows))
		for _, r := range rows {
			if !r.Date.Before(dayStart(from)) && !r.Date.After(dayStart(to)) {
				kept = append(kept, r)
			}
		}
		out["measurements"] = kept
	}
	return out, nil
}

func (s *ReportService) List(userID uint) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (s *ReportService) Get(userID, id uint) (*models.Report, error) {
	var report models.Report
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}
