package main

import (
	"log"
	"strings"

	"tonybot/config"
	"tonybot/controllers"
	"tonybot/db"
	"tonybot/router"
	"tonybot/tools"
	"tonybot/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// =====================
// Expected ENV
// =====================
//
// Server
// - PORT                        (default 8080)
// - LOG_MODE                    (dev|prod, default dev)
//
// Database
// - DATABASE                    (sqlite3|postgres, default sqlite3)
// - DB_PATH                     (sqlite file, default db/database.db)
// - DB_HOST / DB_PORT / DB_USER / DB_NAME / DB_PASS (postgres)
// - AUTOMIGRATE                 (set to 1 to create the chat_logs table)
//
// OpenAI
// - OPENAI_API_KEY
// - OPENAI_MODEL                (default gpt-3.5-turbo)
// - OPENAI_MAX_TOKENS           (default 100)
// - OPENAI_TEMPERATURE          (default 0.7)
//
// Chat logging
// - CHAT_LOG_RETENTION_DAYS     (default 14)
//
// Dashboard
// - DASHBOARD_USERNAME          (default admin)
// - DASHBOARD_PASSWORD          (login disabled when unset)
//
// Contact form
// - WEB3FORMS_ACCESS_KEY
//
// =====================

func main() {
	conf := config.FromEnv()

	zlog, err := newLogger(conf.LogMode)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()
	sugar := zlog.Sugar()

	database, err := db.Connect(conf)
	if err != nil {
		sugar.Fatalw("database connect failed", "error", err)
	}
	defer database.Close()

	ai := tools.NewOpenAIClient(conf.OpenAI.ApiKey, conf.OpenAI.Model, conf.OpenAI.MaxTokens, conf.OpenAI.Temperature)
	forms := tools.NewWeb3FormsClient(conf.Web3FormsAccessKey)
	chatLogger := workers.NewChatLogger(db.NewChatLogStore(database), sugar, conf.Chat.RetentionDays)

	chat := controllers.NewChatController(ai, chatLogger, sugar)
	contact := controllers.NewContactController(forms, sugar)
	dashboard := controllers.NewDashboardController(conf.Dashboard.Username, conf.Dashboard.Password, sugar)

	if strings.EqualFold(conf.LogMode, "prod") {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	router.Initialize(r, sugar, chat, contact, dashboard)

	sugar.Infow("tonybot listening", "port", conf.ApiPort)
	if err := r.Run(":" + conf.ApiPort); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

func newLogger(mode string) (*zap.Logger, error) {
	switch strings.ToLower(mode) {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}
