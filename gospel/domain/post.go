package domain

import (
	"context"
	"errors"
)

// Post types accepted from the client.
const (
	PostTypeArticle = "article"
	PostTypeImage   = "image"
	PostTypeVideo   = "video"
	PostTypeYoutube = "youtube"
	PostTypePDF     = "pdf"
)

// Media types derived from the post type.
const (
	MediaTypeNone    = "none"
	MediaTypeImage   = "image"
	MediaTypeYoutube = "youtube"
	MediaTypePDF     = "pdf"
)

// Post is a single content entry in the store file. Records are created once
// and never mutated in place; delete removes them wholesale.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Banner    string `json:"banner"`
	Content   string `json:"content"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
}

// ErrPostNotFound is returned when a delete targets an id that is not in the
// store.
var ErrPostNotFound = errors.New("post not found")

// PostStore is the ordered collection of posts, newest first, persisted as a
// single JSON file in the remote repository. Every mutation re-fetches and
// rewrites the whole file; the revision marker returned by List guards the
// subsequent write.
type PostStore interface {
	// List fetches and deserializes the store. An absent or malformed file
	// yields an empty slice and an empty revision marker, treated as the
	// first-ever write.
	List(ctx context.Context) ([]Post, string, error)

	// InsertFront prepends post to posts and writes the whole sequence back,
	// creating the file when revision is empty and updating it otherwise.
	InsertFront(ctx context.Context, post Post, posts []Post, revision string) error

	// RemoveByID filters the store by id and writes it back. Returns
	// ErrPostNotFound when no record matched; a missing store file is an
	// error here, unlike List.
	RemoveByID(ctx context.Context, id string) error
}
