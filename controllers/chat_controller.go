package controllers

import (
	"strconv"

	"github.com/Silvia-kc/Project-Germany/pkg/resp"
	"github.com/Silvia-kc/Project-Germany/services"

	"github.com/gin-gonic/gin"
)

type SendMessageRequest struct {
	CarID  uint   `json:"carId" binding:"required"`
	Sender string `json:"sender" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{s}
}

// POST /chat/messages
// Persists the message and broadcasts it server-side, once.
func (ct *ChatController) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "carId, sender and text are required")
		return
	}

	msg, err := ct.service.Send(c.Request.Context(), req.CarID, req.Sender, req.Text)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": msg})
}

// GET /chat/messages (inbox: every listing's messages + brand/model)
func (ct *ChatController) ListAll(c *gin.Context) {
	rows, err := ct.service.Inbox(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /chat/messages/:carId
func (ct *ChatController) ListForCar(c *gin.Context) {
	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid carId")
		return
	}

	msgs, err := ct.service.Messages(c.Request.Context(), uint(carID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, msgs)
}
