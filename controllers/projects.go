package controllers

import (
	"net/http"

	"tonybot/models"

	"github.com/gin-gonic/gin"
)

// GET /api/projects
func GetProjects(c *gin.Context) {
	RespondSuccess(c, gin.H{"projects": models.Projects})
}

// GET /api/projects/:id
func GetProjectByID(c *gin.Context) {
	id := c.Param("id")
	project, ok := models.ProjectByID(id)
	if !ok {
		RespondError(c, "project not found", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"project": project})
}
