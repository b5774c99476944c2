package application

import (
	"context"
	"fmt"
	"time"

	"github.com/dfryer1193/gospel-cms/gospel/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Cover image used when a post arrives without an uploaded file.
const placeholderBanner = "https://images.unsplash.com/photo-1504052434569-70ad5836ab65"

// Dates are stored human-readable, the way the site renders them.
const dateFormat = "Jan 02, 2006"

// CreatePostInput is the validated form data for a new post. FileName is
// empty when the client attached no file.
type CreatePostInput struct {
	Title       string
	Author      string
	Content     string
	Type        string
	MediaURL    string
	FileName    string
	FileContent []byte
}

// PostService orchestrates media upload and store mutation for the two write
// endpoints. It holds no state between requests; the remote repository is the
// sole source of truth.
type PostService struct {
	store domain.PostStore
	media *MediaUploader

	// When false, a failed upload is logged and the post proceeds with the
	// placeholder banner. When true, the failure aborts the request.
	propagateUploadFailure bool

	now func() time.Time
}

// NewPostService creates a new PostService.
func NewPostService(store domain.PostStore, media *MediaUploader, propagateUploadFailure bool) *PostService {
	return &PostService{
		store:                  store,
		media:                  media,
		propagateUploadFailure: propagateUploadFailure,
		now:                    time.Now,
	}
}

// CreatePost uploads the attached media (best-effort, subject to the failure
// policy), derives the banner and media fields from the post type, and
// prepends the finished record to the store.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	uploadedURL := ""
	if input.FileName != "" {
		url, err := s.media.Upload(ctx, input.FileName, input.FileContent, input.Title)
		if err != nil {
			if s.propagateUploadFailure {
				return nil, fmt.Errorf("media upload failed: %w", err)
			}
			log.Error().Err(err).Str("file", input.FileName).Msg("Media upload failed, falling back to placeholder banner")
		} else {
			uploadedURL = url
		}
	}

	banner := placeholderBanner
	if uploadedURL != "" {
		banner = uploadedURL
	}

	post := domain.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Author:    input.Author,
		Date:      s.now().Format(dateFormat),
		Type:      input.Type,
		Banner:    banner,
		Content:   input.Content,
		MediaType: deriveMediaType(input.Type),
		MediaURL:  deriveMediaURL(input.Type, banner, input.MediaURL),
	}

	posts, revision, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if err := s.store.InsertFront(ctx, post, posts, revision); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &post, nil
}

// DeletePost removes the post with the given id from the store. Returns
// domain.ErrPostNotFound when no such post exists. The media file a deleted
// post may have uploaded stays in the repository; nothing tracks ownership.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	return s.store.RemoveByID(ctx, id)
}

// deriveMediaType maps the client-facing post type onto the media tag the
// frontend switches on.
func deriveMediaType(postType string) string {
	switch postType {
	case domain.PostTypeVideo, domain.PostTypeYoutube:
		return domain.MediaTypeYoutube
	case domain.PostTypePDF:
		return domain.MediaTypePDF
	case domain.PostTypeImage:
		return domain.MediaTypeImage
	default:
		return domain.MediaTypeNone
	}
}

// deriveMediaURL picks where the frontend should point its media embed:
// image posts use the banner, link-backed posts use the submitted link, and
// plain articles have no media at all.
func deriveMediaURL(postType string, banner string, submittedURL string) string {
	switch postType {
	case domain.PostTypeImage:
		return banner
	case domain.PostTypeVideo, domain.PostTypeYoutube, domain.PostTypePDF:
		return submittedURL
	default:
		return ""
	}
}
