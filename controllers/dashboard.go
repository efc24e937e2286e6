package controllers

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"sync"
	"time"

	dbpkg "tonybot/db"
	"tonybot/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dashboardTokenHeader = "X-Dashboard-Token"
const dashboardFetchLimit = 100

// DashboardController gates the chat analytics behind a static credential
// check. Tokens live in process memory only, so a restart logs everyone out.
// This is not a real auth system.
type DashboardController struct {
	Username string
	Password string
	Log      *zap.SugaredLogger

	mu       sync.Mutex
	sessions map[string]bool
}

func NewDashboardController(username, password string, log *zap.SugaredLogger) *DashboardController {
	return &DashboardController{
		Username: username,
		Password: password,
		Log:      log,
		sessions: make(map[string]bool),
	}
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/dashboard/login
func (d *DashboardController) Login(c *gin.Context) {
	if d.Password == "" {
		RespondError(c, "dashboard not configured", http.StatusServiceUnavailable)
		return
	}

	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(in.Username), []byte(d.Username))
	passOK := subtle.ConstantTimeCompare([]byte(in.Password), []byte(d.Password))
	if userOK&passOK != 1 {
		RespondError(c, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	token := uuid.NewString()
	d.mu.Lock()
	d.sessions[token] = true
	d.mu.Unlock()

	RespondSuccess(c, gin.H{"token": token})
}

// POST /api/dashboard/logout
func (d *DashboardController) Logout(c *gin.Context) {
	token := c.GetHeader(dashboardTokenHeader)
	d.mu.Lock()
	delete(d.sessions, token)
	d.mu.Unlock()
	RespondSuccess(c, gin.H{"status": "logged out"})
}

// AuthRequired rejects requests without a live dashboard token.
func (d *DashboardController) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(dashboardTokenHeader)
		d.mu.Lock()
		ok := token != "" && d.sessions[token]
		d.mu.Unlock()
		if !ok {
			RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

type dashboardStats struct {
	TotalChats     int `json:"totalChats"`
	TodayChats     int `json:"todayChats"`
	UniqueSessions int `json:"uniqueSessions"`
}

type storageStats struct {
	TotalRecords  int64  `json:"totalRecords"`
	EstimatedSize string `json:"estimatedSize"`
}

// GET /api/dashboard/logs
//
// Returns the 100 most recent rows plus stats derived from that batch.
// uniqueSessions is distinct session ids among the fetched rows, not a
// lifetime count; with more than 100 rows it understates the true number.
func (d *DashboardController) GetChatLogs(c *gin.Context) {
	database := dbpkg.DBInstance(c)
	if database == nil {
		RespondError(c, "db not configured on context", http.StatusInternalServerError)
		return
	}
	store := dbpkg.NewChatLogStore(database)

	logs, err := store.Recent(dashboardFetchLimit)
	if err != nil {
		// Dashboard degrades to an empty state instead of an error page.
		d.Log.Errorw("chat log fetch failed", "error", err)
		RespondSuccess(c, gin.H{
			"logs":    []models.ChatLog{},
			"stats":   dashboardStats{},
			"storage": storageStats{EstimatedSize: "0 B"},
		})
		return
	}

	today := time.Now().Format("2006-01-02")
	stats := dashboardStats{TotalChats: len(logs)}
	seen := map[string]bool{}
	for _, l := range logs {
		if l.CreatedAt != nil && l.CreatedAt.Format("2006-01-02") == today {
			stats.TodayChats++
		}
		if !seen[l.SessionID] {
			seen[l.SessionID] = true
			stats.UniqueSessions++
		}
	}

	storage := storageStats{EstimatedSize: "0 B"}
	if total, err := store.Count(); err != nil {
		d.Log.Errorw("chat log count failed", "error", err)
	} else {
		storage = storageStats{TotalRecords: total, EstimatedSize: estimateSize(total)}
	}

	RespondSuccess(c, gin.H{
		"logs":    logs,
		"stats":   stats,
		"storage": storage,
	})
}

// estimateSize assumes ~500 bytes per row (text + metadata).
func estimateSize(records int64) string {
	bytes := records * 500
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
