package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort         = 5000
	defaultStorePath    = "gospel.json"
	defaultUploadFolder = "gospel-uploads/"
)

// UploadFailurePolicy controls what happens when pushing a media file to the
// repository fails: fall back to the placeholder banner, or fail the request.
type UploadFailurePolicy string

const (
	UploadFailureFallback  UploadFailurePolicy = "fallback"
	UploadFailurePropagate UploadFailurePolicy = "propagate"
)

// Config holds everything the server needs at startup. It is built once in
// main and passed explicitly to constructors; nothing reads the environment
// after Load returns.
type Config struct {
	GithubToken     string
	RepoOwner       string
	RepoName        string
	WebsiteURL      string
	StorePath       string
	UploadFolder    string
	OnUploadFailure UploadFailurePolicy
	Port            int
}

// Load reads configuration from the environment, honoring a .env file when
// present. It fails when a required variable is missing or malformed.
func Load() (*Config, error) {
	// A missing .env file is fine; the variables may come from the real
	// environment.
	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	repoFullName := os.Getenv("GITHUB_REPO_NAME")
	websiteURL := os.Getenv("WEBSITE_URL")

	if token == "" || repoFullName == "" || websiteURL == "" {
		return nil, fmt.Errorf("missing critical environment variables: GITHUB_TOKEN, GITHUB_REPO_NAME and WEBSITE_URL are required")
	}

	owner, name, found := strings.Cut(repoFullName, "/")
	if !found || owner == "" || name == "" {
		return nil, fmt.Errorf("GITHUB_REPO_NAME must be in owner/repo form, got %q", repoFullName)
	}

	storePath := os.Getenv("JSON_PATH")
	if storePath == "" {
		storePath = defaultStorePath
	}

	uploadFolder := os.Getenv("UPLOAD_FOLDER")
	if uploadFolder == "" {
		uploadFolder = defaultUploadFolder
	}

	policy := UploadFailureFallback
	if v := os.Getenv("ON_UPLOAD_FAILURE"); v != "" {
		switch UploadFailurePolicy(v) {
		case UploadFailureFallback, UploadFailurePropagate:
			policy = UploadFailurePolicy(v)
		default:
			return nil, fmt.Errorf("ON_UPLOAD_FAILURE must be %q or %q, got %q", UploadFailureFallback, UploadFailurePropagate, v)
		}
	}

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT must be a number, got %q: %w", v, err)
		}
		port = p
	}

	return &Config{
		GithubToken:     token,
		RepoOwner:       owner,
		RepoName:        name,
		WebsiteURL:      ensureTrailingSlash(websiteURL),
		StorePath:       storePath,
		UploadFolder:    ensureTrailingSlash(uploadFolder),
		OnUploadFailure: policy,
		Port:            port,
	}, nil
}

// ensureTrailingSlash normalizes configured URL/path segments so they can be
// concatenated without separator checks downstream.
func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
