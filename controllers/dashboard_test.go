package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dbpkg "tonybot/db"
	"tonybot/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

func newDashboardRouter(t *testing.T, database *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d := NewDashboardController("admin", "secret", zap.NewNop().Sugar())

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	r.POST("/api/dashboard/login", d.Login)
	gated := r.Group("", d.AuthRequired())
	gated.POST("/api/dashboard/logout", d.Logout)
	gated.GET("/api/dashboard/logs", d.GetChatLogs)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Dashboard-Token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/dashboard/login", `{"username":"admin","password":"secret"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out["token"] == "" {
		t.Fatal("login returned no token")
	}
	return out["token"]
}

func seedLog(t *testing.T, store *dbpkg.ChatLogStore, session string, age time.Duration) {
	t.Helper()
	row, err := store.Insert(models.ChatLog{UserMessage: "q", AIResponse: "a", SessionID: session})
	if err != nil {
		t.Fatalf("seed insert: %v", err)
	}
	if age > 0 {
		err := store.DB.Model(&models.ChatLog{}).
			Where("id = ?", row.ID).
			UpdateColumn("created_at", time.Now().Add(-age)).Error
		if err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}
}

func TestDashboardLoginRejectsBadCredentials(t *testing.T) {
	r := newDashboardRouter(t, testDB(t))

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nobody","password":"secret"}`,
		`{}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/api/dashboard/login", body, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("body %q: status = %d, want 401", body, w.Code)
		}
	}
}

func TestDashboardRequiresToken(t *testing.T) {
	r := newDashboardRouter(t, testDB(t))

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/logs", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without token", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/dashboard/logs", "", "made-up-token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 with unknown token", w.Code)
	}
}

func TestDashboardStats(t *testing.T) {
	database := testDB(t)
	store := dbpkg.NewChatLogStore(database)

	// Three exchanges today across two sessions, one older exchange from a
	// third session. All four fit inside the fetch limit.
	seedLog(t, store, "session_a", 0)
	seedLog(t, store, "session_a", 0)
	seedLog(t, store, "session_b", 0)
	seedLog(t, store, "session_c", 48*time.Hour)

	r := newDashboardRouter(t, database)
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/logs", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var out struct {
		Logs  []models.ChatLog `json:"logs"`
		Stats dashboardStats   `json:"stats"`
		Store storageStats     `json:"storage"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(out.Logs) != 4 {
		t.Errorf("logs = %d, want 4", len(out.Logs))
	}
	if out.Stats.TotalChats != 4 {
		t.Errorf("totalChats = %d, want 4", out.Stats.TotalChats)
	}
	if out.Stats.TodayChats != 3 {
		t.Errorf("todayChats = %d, want 3", out.Stats.TodayChats)
	}
	if out.Stats.UniqueSessions != 3 {
		t.Errorf("uniqueSessions = %d, want 3", out.Stats.UniqueSessions)
	}
	if out.Store.TotalRecords != 4 {
		t.Errorf("totalRecords = %d, want 4", out.Store.TotalRecords)
	}
	if out.Store.EstimatedSize != "2.0 KB" {
		t.Errorf("estimatedSize = %q, want 2.0 KB", out.Store.EstimatedSize)
	}
}

func TestDashboardEmptyStateOnFetchFailure(t *testing.T) {
	database := testDB(t)
	database.DropTable(&models.ChatLog{})

	r := newDashboardRouter(t, database)
	token := login(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard/logs", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 empty state", w.Code)
	}

	var out struct {
		Logs  []models.ChatLog `json:"logs"`
		Stats dashboardStats   `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Logs) != 0 || out.Stats.TotalChats != 0 {
		t.Errorf("want empty state, got %+v", out)
	}
}

func TestDashboardLogout(t *testing.T) {
	r := newDashboardRouter(t, testDB(t))
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/dashboard/logout", "", token)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/dashboard/logs", "", token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status after logout = %d, want 401", w.Code)
	}
}
