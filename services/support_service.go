package services

import (
	"errors"
	"log"
	"strings"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportService struct {
	db *gorm.DB
}

func NewSupportService(db *gorm.DB) *SupportService {
	return &SupportService{db: db}
}

type TicketInput struct {
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *SupportService) CreateTicket(userID uint, email string, in TicketInput) (*models.SupportTicket, error) {
	ticket := models.SupportTicket{
		UserID:  userID,
		Number:  "TKT-" + strings.ToUpper(uuid.NewString()[:8]),
		Subject: in.Subject,
		Message: in.Message,
		Status:  "open",
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, err
	}

	// acknowledgement mail is best effort
	if err := utils.SendTicketAckEmail(email, ticket.Number, ticket.Subject); err != nil {
		log.Printf("ticket ack mail failed: %v", err)
	}
	return &ticket, nil
}

func (s *SupportService) ListTickets(userID uint) ([]models.SupportTicket, error) {
	var tickets []models.SupportTicket
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (s *SupportService) CloseTicket(userID, id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	ticket.Status = "closed"
	if err := s.db.Model(&ticket).Update("status", "closed").Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}
