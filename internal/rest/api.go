package rest

import (
	"github.com/dfryer1193/gospel-cms/gospel/application"
	"github.com/gin-gonic/gin"
)

// NewApi registers the content manager endpoints on the given engine.
func NewApi(router *gin.Engine, service *application.PostService, repoFullName string) {
	h := &postsHandler{
		service:      service,
		repoFullName: repoFullName,
	}

	router.GET("/", h.HealthCheck)
	router.POST("/add-post", h.AddPost)
	router.POST("/delete-post", h.DeletePost)
}
