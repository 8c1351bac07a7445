package mediastore

import (
	"testing"

	"truthguard/internal/config"
)

func TestNewS3Store_RejectsIncompleteConfig(t *testing.T) {
	_, err := NewS3Store(config.MediaConfig{S3Endpoint: "localhost:9000"})
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestObjectKey(t *testing.T) {
	if got := objectKey("a1", "/clip.mp4"); got != "a1/clip.mp4" {
		t.Fatalf("key = %q", got)
	}
	if got := objectKey("a1", "  "); got != "a1/media" {
		t.Fatalf("key = %q", got)
	}
}
