package application

import (
	"context"
	"encoding/hex"
	"fmt"
	"path"
	"strings"

	"github.com/dfryer1193/gospel-cms/gospel/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Extensions the client is allowed to upload. Anything else is skipped
// without an error and the post falls back to the placeholder banner.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"pdf":  true,
}

// MediaUploader commits uploaded files into a fixed folder of the remote
// repository and derives the public URL they will be served from. Each upload
// is one commit.
type MediaUploader struct {
	files        domain.FileRepository
	websiteURL   string
	uploadFolder string
}

// NewMediaUploader creates a new MediaUploader. websiteURL and uploadFolder
// must end with a path separator; config guarantees that.
func NewMediaUploader(files domain.FileRepository, websiteURL string, uploadFolder string) *MediaUploader {
	return &MediaUploader{
		files:        files,
		websiteURL:   websiteURL,
		uploadFolder: uploadFolder,
	}
}

// Upload pushes the file to the repository under a collision-resistant name
// and returns its public URL. Files with a disallowed extension are skipped:
// the returned URL is empty and err is nil. Only transport-level failures
// produce an error.
func (u *MediaUploader) Upload(ctx context.Context, filename string, content []byte, title string) (string, error) {
	ext := fileExtension(filename)
	if !allowedExtensions[ext] {
		log.Debug().Str("file", filename).Msg("Skipping upload of disallowed file")
		return "", nil
	}

	repoPath := u.uploadFolder + uniqueFilename(ext)
	message := fmt.Sprintf("Upload media: %s", title)
	if err := u.files.CreateFile(ctx, repoPath, message, content); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	return u.websiteURL + repoPath, nil
}

// fileExtension returns the lowercased extension without the dot, or "" when
// the name has none.
func fileExtension(filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// uniqueFilename replaces the base name with 32 random hex characters so
// repeated uploads of the same file never collide in the repository.
func uniqueFilename(ext string) string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + "." + ext
}
