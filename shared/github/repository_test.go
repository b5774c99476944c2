package github

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dfryer1193/gospel-cms/gospel/domain"
	"github.com/google/go-github/v68/github"
)

func githubError(status int, message string) error {
	return &github.ErrorResponse{
		Response: &http.Response{StatusCode: status},
		Message:  message,
	}
}

func TestHandleGithubError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{
			name:     "404 maps to file-not-found",
			err:      githubError(http.StatusNotFound, "Not Found"),
			sentinel: domain.ErrFileNotFound,
		},
		{
			name:     "409 maps to revision conflict",
			err:      githubError(http.StatusConflict, "is at ... but expected ..."),
			sentinel: domain.ErrRevisionConflict,
		},
		{
			name:     "401 stays generic",
			err:      githubError(http.StatusUnauthorized, "Bad credentials"),
			sentinel: nil,
		},
		{
			name:     "Transport error stays generic",
			err:      errors.New("connection refused"),
			sentinel: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleGithubError("updating file gospel.json", tt.err)
			if result == nil {
				t.Fatal("Expected a non-nil error")
			}

			if tt.sentinel != nil {
				if !errors.Is(result, tt.sentinel) {
					t.Errorf("Expected %v, got %v", tt.sentinel, result)
				}
				return
			}

			if errors.Is(result, domain.ErrFileNotFound) || errors.Is(result, domain.ErrRevisionConflict) {
				t.Errorf("Error should stay generic, got %v", result)
			}
		})
	}
}

func TestHandleGithubError_Nil(t *testing.T) {
	if err := handleGithubError("getting file gospel.json", nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}

func TestRepoFullName(t *testing.T) {
	repo := NewGithubFileRepository(github.NewClient(nil), "example", "content")
	if got := repo.RepoFullName(); got != "example/content" {
		t.Errorf("Expected example/content, got %q", got)
	}
}
