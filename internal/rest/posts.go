package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dfryer1193/gospel-cms/api"
	"github.com/dfryer1193/gospel-cms/gospel/application"
	"github.com/dfryer1193/gospel-cms/gospel/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type postsHandler struct {
	service      *application.PostService
	repoFullName string
}

// HealthCheck reports that the server is reachable and which repository it
// manages.
func (h *postsHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:  "online",
		Message: "Gospel Content Manager API is running...",
		Repo:    h.repoFullName,
	})
}

// AddPost accepts a multipart form describing a new post with an optional
// media file, and commits both into the repository.
func (h *postsHandler) AddPost(c *gin.Context) {
	title := c.PostForm("title")
	author := c.PostForm("author")

	if title == "" || author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and Author are required"})
		return
	}

	input := application.CreatePostInput{
		Title:    title,
		Author:   author,
		Content:  c.PostForm("content"),
		Type:     c.PostForm("type"),
		MediaURL: c.PostForm("mediaUrl"),
	}

	// The file part is optional; only a present-but-unreadable file is an
	// error.
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.serverError(c, err)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			h.serverError(c, err)
			return
		}

		input.FileName = fileHeader.Filename
		input.FileContent = content
	}

	post, err := h.service.CreatePost(c.Request.Context(), input)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.CreatePostResponse{
		Message:   "Post and media uploaded successfully!",
		ID:        post.ID,
		URL:       post.MediaURL,
		BannerURL: post.Banner,
	})
}

// DeletePost removes a post by id.
func (h *postsHandler) DeletePost(c *gin.Context) {
	req := &api.DeletePostRequest{}
	if err := c.ShouldBindJSON(req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post id is required"})
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.DeletePostResponse{
		Message: "Post deleted successfully!",
	})
}

// serverError collapses every non-validation failure into a 500 carrying the
// raw error message; the client cannot distinguish causes beyond the status
// code.
func (h *postsHandler) serverError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
