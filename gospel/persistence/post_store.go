package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dfryer1193/gospel-cms/gospel/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.PostStore = (*GithubPostStore)(nil)

// GithubPostStore implements domain.PostStore on top of a single JSON file in
// the remote repository. The whole array is fetched and rewritten on every
// mutation; GitHub's SHA check on update is the only consistency guard.
type GithubPostStore struct {
	files     domain.FileRepository
	storePath string
}

// NewGithubPostStore creates a new GithubPostStore persisting at storePath.
func NewGithubPostStore(files domain.FileRepository, storePath string) *GithubPostStore {
	return &GithubPostStore{
		files:     files,
		storePath: storePath,
	}
}

// List fetches and deserializes the store file. A missing or malformed file
// is treated as an empty store about to receive its first write, so the
// returned revision marker is empty and no error is surfaced.
func (s *GithubPostStore) List(ctx context.Context) ([]domain.Post, string, error) {
	content, revision, err := s.files.GetFile(ctx, s.storePath)
	if err != nil {
		log.Warn().Err(err).Str("path", s.storePath).Msg("Store file unavailable, starting from an empty store")
		return []domain.Post{}, "", nil
	}

	var posts []domain.Post
	if err := json.Unmarshal(content, &posts); err != nil {
		log.Warn().Err(err).Str("path", s.storePath).Msg("Store file malformed, starting from an empty store")
		return []domain.Post{}, "", nil
	}

	return posts, revision, nil
}

// InsertFront prepends post and writes the whole array back. An empty
// revision means the store file does not exist yet and must be created.
func (s *GithubPostStore) InsertFront(ctx context.Context, post domain.Post, posts []domain.Post, revision string) error {
	updated := append([]domain.Post{post}, posts...)

	serialized, err := marshalStore(updated)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("New post: %s", post.Title)
	if revision == "" {
		if err := s.files.CreateFile(ctx, s.storePath, message, serialized); err != nil {
			return fmt.Errorf("failed to create store file: %w", err)
		}
		return nil
	}

	if err := s.files.UpdateFile(ctx, s.storePath, message, serialized, revision); err != nil {
		return fmt.Errorf("failed to update store file: %w", err)
	}
	return nil
}

// RemoveByID filters out the post with the given id and writes the array
// back. Unlike List, a missing store file fails loudly: there is nothing to
// delete from.
func (s *GithubPostStore) RemoveByID(ctx context.Context, id string) error {
	content, revision, err := s.files.GetFile(ctx, s.storePath)
	if err != nil {
		return fmt.Errorf("failed to fetch store file: %w", err)
	}

	var posts []domain.Post
	if err := json.Unmarshal(content, &posts); err != nil {
		return fmt.Errorf("failed to parse store file: %w", err)
	}

	remaining := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(posts) {
		return domain.ErrPostNotFound
	}

	serialized, err := marshalStore(remaining)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("Delete post: %s", id)
	if err := s.files.UpdateFile(ctx, s.storePath, message, serialized, revision); err != nil {
		return fmt.Errorf("failed to update store file: %w", err)
	}
	return nil
}

// marshalStore serializes the array pretty-printed, matching what a human
// editing the file in the repository would expect to see.
func marshalStore(posts []domain.Post) ([]byte, error) {
	serialized, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize store: %w", err)
	}
	return serialized, nil
}
