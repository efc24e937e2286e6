package controllers

import (
	"net/http"
	"strings"

	"tonybot/tools"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactController forwards contact form submissions to Web3Forms.
type ContactController struct {
	Forms *tools.Web3FormsClient
	Log   *zap.SugaredLogger
}

func NewContactController(forms *tools.Web3FormsClient, log *zap.SugaredLogger) *ContactController {
	return &ContactController{Forms: forms, Log: log}
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/contact
func (ct *ContactController) Submit(c *gin.Context) {
	var in contactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, "Name, email and message are required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Message) == "" {
		RespondError(c, "Name, email and message are required", http.StatusBadRequest)
		return
	}

	if err := ct.Forms.SendContact(c.Request.Context(), in.Name, in.Email, in.Message); err != nil {
		ct.Log.Errorw("contact forward failed", "error", err)
		RespondError(c, "Failed to send message", http.StatusBadGateway)
		return
	}

	RespondSuccess(c, gin.H{"status": "sent"})
}
