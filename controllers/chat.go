package controllers

import (
	"net/http"
	"strings"

	"tonybot/models"
	"tonybot/tools"
	"tonybot/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const chatErrorMessage = "Failed to get response from AI"
const missingMessageError = "Message is required"

// ChatController answers visitor questions through the completion API and
// logs each exchange as a detached task.
type ChatController struct {
	AI     *tools.OpenAIClient
	Logger *workers.ChatLogger
	Log    *zap.SugaredLogger

	// Dispatch starts the logging task. Overridable so tests can run it
	// synchronously; production wiring uses workers.Dispatch.
	Dispatch func(name string, fn func() error)
}

func NewChatController(ai *tools.OpenAIClient, chatLogger *workers.ChatLogger, log *zap.SugaredLogger) *ChatController {
	return &ChatController{
		AI:     ai,
		Logger: chatLogger,
		Log:    log,
		Dispatch: func(name string, fn func() error) {
			workers.Dispatch(log, name, fn)
		},
	}
}

type chatInput struct {
	Message string `json:"message"`
}

// POST /api/chat
func (ct *ChatController) Chat(c *gin.Context) {
	var in chatInput
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Message) == "" {
		RespondError(c, missingMessageError, http.StatusBadRequest)
		return
	}

	reply, err := ct.AI.GenerateReply(c.Request.Context(), SystemPrompt(), in.Message)
	if err != nil {
		ct.Log.Errorw("openai call failed", "error", err)
		RespondError(c, chatErrorMessage, http.StatusInternalServerError)
		return
	}
	if reply == "" {
		reply = FallbackReply
	}

	entry := models.ChatLog{
		UserMessage: in.Message,
		AIResponse:  reply,
		UserIP:      tools.ClientIP(c.Request.Header),
		UserAgent:   c.Request.UserAgent(),
		SessionID:   tools.SessionID(c.Request.Header),
	}
	ct.Dispatch("chat-log", func() error {
		return ct.Logger.Record(entry)
	})

	RespondSuccess(c, gin.H{"reply": reply})
}
