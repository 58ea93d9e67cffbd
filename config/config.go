package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.NutritionEntry{},
		&models.Meal{},
		&models.MealFoodItem{},
		&models.Goal{},
		&models.Milestone{},
		&models.GoalProgress{},
		&models.Exercise{},
		&models.WorkoutRoutine{},
		&models.RoutineExercise{},
		&models.WorkoutSession{},
		&models.SessionExercise{},
		&models.WorkoutTemplate{},
		&models.TemplateExercise{},
		&models.Progress{},
		&models.MealPlan{},
		&models.MealPlanItem{},
		&models.ForumPost{},
		&models.ForumComment{},
		&models.Notification{},
		&models.SupportTicket{},
		&models.Reminder{},
		&models.Report{},
		&models.ActivityLog{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
