package utils

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestObjectKeyPreservesExtension(t *testing.T) {
	tests := []struct {
		filename string
		wantExt  string
	}{
		{"lunch.jpg", ".jpg"},
		{"IMG_2041.JPEG", ".jpeg"},
		{"photo.png", ".png"},
		{"no-extension", ""},
	}
	for _, tt := range tests {
		key := objectKey(tt.filename)
		if !strings.HasPrefix(key, "meal-images/") {
			t.Errorf("objectKey(%q) = %q, want meal-images/ prefix", tt.filename, key)
		}
		if !strings.HasSuffix(key, tt.wantExt) {
			t.Errorf("objectKey(%q) = %q, want %q suffix", tt.filename, key, tt.wantExt)
		}
	}
}

func TestObjectKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := objectKey("meal.jpg")
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
}

func TestUploadWithoutConfiguration(t *testing.T) {
	if StorageAvailable() {
		t.Skip("S3 configured in this environment")
	}
	_, err := UploadMealImage(context.Background(), []byte("fake"), "meal.jpg", "image/jpeg")
	if !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("err = %v, want ErrStorageNotConfigured", err)
	}
}
