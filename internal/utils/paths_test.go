package utils

import (
	"testing"
)

func TestGetAbsolutePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		baseDir  string
		expected string
	}{
		{"already absolute", "/test/file.txt", "/base/dir", "/test/file.txt"},
		{"relative path", "relative/file.txt", "/base/dir", "/base/dir/relative/file.txt"},
		{"dot path", "./file.txt", "/base/dir", "/base/dir/file.txt"},
		{"double dot path", "../file.txt", "/base/dir", "/base/file.txt"},
		{"empty path", "", "/base/dir", "/base/dir"},
		{"empty base dir", "file.txt", "", "file.txt"},
		{"path cleaning", "a//b///c/file.txt", "/base//dir", "/base/dir/a/b/c/file.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAbsolutePath(tt.path, tt.baseDir); got != tt.expected {
				t.Errorf("GetAbsolutePath(%q, %q) = %q, want %q", tt.path, tt.baseDir, got, tt.expected)
			}
		})
	}
}
