package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "token")
	t.Setenv("GITHUB_REPO_NAME", "example/content")
	t.Setenv("WEBSITE_URL", "https://example.org/")
	t.Setenv("JSON_PATH", "")
	t.Setenv("UPLOAD_FOLDER", "")
	t.Setenv("ON_UPLOAD_FAILURE", "")
	t.Setenv("PORT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RepoOwner != "example" || cfg.RepoName != "content" {
		t.Errorf("Repo name not split, got owner %q repo %q", cfg.RepoOwner, cfg.RepoName)
	}
	if cfg.StorePath != "gospel.json" {
		t.Errorf("Expected default store path, got %q", cfg.StorePath)
	}
	if cfg.UploadFolder != "gospel-uploads/" {
		t.Errorf("Expected default upload folder, got %q", cfg.UploadFolder)
	}
	if cfg.OnUploadFailure != UploadFailureFallback {
		t.Errorf("Expected fallback policy by default, got %q", cfg.OnUploadFailure)
	}
	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{
			name:  "No token",
			unset: "GITHUB_TOKEN",
		},
		{
			name:  "No repo",
			unset: "GITHUB_REPO_NAME",
		},
		{
			name:  "No website URL",
			unset: "WEBSITE_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Errorf("Expected Load to fail without %s", tt.unset)
			}
		})
	}
}

func TestLoad_RepoNameMustBeOwnerSlashRepo(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GITHUB_REPO_NAME", "just-a-repo")

	if _, err := Load(); err == nil {
		t.Error("Expected Load to reject a repo name without an owner")
	}
}

func TestLoad_TrailingSlashNormalization(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBSITE_URL", "https://example.org")
	t.Setenv("UPLOAD_FOLDER", "media")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.WebsiteURL != "https://example.org/" {
		t.Errorf("Website URL not normalized, got %q", cfg.WebsiteURL)
	}
	if cfg.UploadFolder != "media/" {
		t.Errorf("Upload folder not normalized, got %q", cfg.UploadFolder)
	}
}

func TestLoad_UploadFailurePolicy(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ON_UPLOAD_FAILURE", "propagate")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OnUploadFailure != UploadFailurePropagate {
		t.Errorf("Expected propagate policy, got %q", cfg.OnUploadFailure)
	}

	t.Setenv("ON_UPLOAD_FAILURE", "retry")
	if _, err := Load(); err == nil {
		t.Error("Expected Load to reject an unknown policy")
	}
}

func TestLoad_BadPort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Error("Expected Load to reject a non-numeric port")
	}
}
