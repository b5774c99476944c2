package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dfryer1193/gospel-cms/gospel/domain"
	"github.com/google/go-github/v68/github"
)

// All writes land on the main branch; the site builds from it directly.
const branch = "main"

// GithubFileRepository is an implementation of domain.FileRepository that uses
// the GitHub contents API. The blob SHA reported by GetContents doubles as the
// revision marker for optimistic-concurrency updates.
type GithubFileRepository struct {
	client  *github.Client
	owner   string
	gitRepo string
}

// NewGithubFileRepository creates a new GithubFileRepository.
func NewGithubFileRepository(client *github.Client, owner string, gitRepo string) domain.FileRepository {
	return &GithubFileRepository{
		client:  client,
		owner:   owner,
		gitRepo: gitRepo,
	}
}

// GetFile fetches the contents of a file on the main branch along with its
// blob SHA.
func (g *GithubFileRepository) GetFile(ctx context.Context, path string) ([]byte, string, error) {
	op := fmt.Sprintf("getting file %s", path)
	fileContent, _, _, err := g.client.Repositories.GetContents(ctx, g.owner, g.gitRepo, path, &github.RepositoryContentGetOptions{
		Ref: branch,
	})
	if err != nil {
		return nil, "", handleGithubError(op, err)
	}

	if fileContent == nil {
		return nil, "", fmt.Errorf("github: %s returned nil file content", op)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("github: %s failed to decode content: %w", op, err)
	}

	return []byte(content), fileContent.GetSHA(), nil
}

// CreateFile commits a new file to the main branch.
func (g *GithubFileRepository) CreateFile(ctx context.Context, path string, message string, content []byte) error {
	op := fmt.Sprintf("creating file %s", path)
	_, _, err := g.client.Repositories.CreateFile(ctx, g.owner, g.gitRepo, path, &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: content,
		Branch:  github.Ptr(branch),
	})
	if err != nil {
		return handleGithubError(op, err)
	}
	return nil
}

// UpdateFile overwrites an existing file on the main branch. revision must be
// the blob SHA from the latest GetFile.
func (g *GithubFileRepository) UpdateFile(ctx context.Context, path string, message string, content []byte, revision string) error {
	op := fmt.Sprintf("updating file %s", path)
	_, _, err := g.client.Repositories.UpdateFile(ctx, g.owner, g.gitRepo, path, &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: content,
		Branch:  github.Ptr(branch),
		SHA:     github.Ptr(revision),
	})
	if err != nil {
		return handleGithubError(op, err)
	}
	return nil
}

// RepoFullName returns the repository's full name (e.g., "owner/repo").
func (g *GithubFileRepository) RepoFullName() string {
	return fmt.Sprintf("%s/%s", g.owner, g.gitRepo)
}

// handleGithubError inspects an error from the go-github client and returns a
// more informative, structured error. Missing files and stale-SHA conflicts
// map to the domain sentinels so callers can branch on them.
func handleGithubError(op string, err error) error {
	if err == nil {
		return nil
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		switch errResp.Response.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("github: %s: %w", op, domain.ErrFileNotFound)
		case http.StatusConflict:
			return fmt.Errorf("github: %s: %w", op, domain.ErrRevisionConflict)
		}
		return fmt.Errorf("github: %s failed with status %d: %s", op, errResp.Response.StatusCode, errResp.Message)
	}

	return fmt.Errorf("github: %s failed: %w", op, err)
}
