package router

import (
	"tonybot/controllers"
	"tonybot/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Initialize wires all routes and middlewares. Controllers are constructed
// in main and passed in; the DB middleware is registered there too.
func Initialize(r *gin.Engine, log *zap.SugaredLogger, chat *controllers.ChatController, contact *controllers.ContactController, dashboard *controllers.DashboardController) {
	r.Use(gin.Recovery())
	r.Use(Logger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	api := r.Group("/api")

	// Chat (public)
	api.POST("/chat", chat.Chat)

	// Static project catalog (public)
	api.GET("/projects", controllers.GetProjects)
	api.GET("/projects/:id", controllers.GetProjectByID)

	// Contact forward (public)
	api.POST("/contact", contact.Submit)

	// Analytics dashboard (static credential gate)
	dash := api.Group("/dashboard")
	dash.POST("/login", dashboard.Login)

	gated := dash.Group("")
	gated.Use(dashboard.AuthRequired())
	gated.POST("/logout", dashboard.Logout)
	gated.GET("/logs", dashboard.GetChatLogs)

	log.Infow("routes initialized")
}
