package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RecognitionService turns a food photo into catalog search hits.
type RecognitionService struct {
	client *rekognition.Client
	foods  *FoodService
}

func NewRecognitionService(foods *FoodService) (*RecognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RecognitionService{client: rekognition.NewFromConfig(cfg), foods: foods}, nil
}

// RecognizeLabels returns the top labels for a base64-encoded image.
func (r *RecognitionService) RecognizeLabels(base64Img string) ([]string, error) {
	idx := strings.Index(base64Img, ",")
	if idx < 0 || !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, *l.Name)
	}
	return labels, nil
}

// RecognizeFood searches the food catalog with the most confident label.
func (r *RecognitionService) RecognizeFood(userID uint, base64Img string) ([]models.Food, error) {
	labels, err := r.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, errors.New("no labels detected")
	}
	return r.foods.Search(userID, labels[0], "")
}
