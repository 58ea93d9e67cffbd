package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Birthday     string  `json:"birthday"` // YYYY-MM-DD
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	FitnessGoals string  `json:"fitness_goals"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	profile := map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"first_name":      user.FirstName,
		"last_name":       user.LastName,
		"birthday":        user.Birthday.Format("2006-01-02"),
		"age":             age,
		"height":          user.Height,
		"weight":          user.Weight,
		"fitness_goals":   user.FitnessGoals,
		"profile_picture": user.ProfilePicture,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}

	return config.DB.Save(&user).Error
}

func UpdateProfilePicture(userID uint, base64Image string) (string, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return "", errors.New("user not found or disabled")
	}

	url, err := utils.UploadBase64ImageToS3(base64Image, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	user.ProfilePicture = url
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}
	return url, nil
}
