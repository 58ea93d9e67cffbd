package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SupportController struct {
	Support *services.SupportService
}

func NewSupportController(s *services.SupportService) *SupportController {
	return &SupportController{Support: s}
}

func (sc *SupportController) CreateTicket(c *gin.Context) {
	uid := c.GetUint("userID")
	email := c.GetString("email")

	var in services.TicketInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ticket, err := sc.Support.CreateTicket(uid, email, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (sc *SupportController) ListTickets(c *gin.Context) {
	uid := c.GetUint("userID")
	tickets, err := sc.Support.ListTickets(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (sc *SupportController) CloseTicket(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ticket, err := sc.Support.CloseTicket(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
