package errors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "lodash", false},
		{"scoped", "@scope/pkg", false},
		{"empty is allowed", "", false},
		{"too long", strings.Repeat("a", 215), true},
		{"control char", "pkg\x07", true},
		{"newline", "pkg\nname", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidManifest) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidManifest)
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"package.json", false},
		{"Cargo.toml", false},
		{"", true},
		{"dir/package.json", true},
		{`dir\package.json`, true},
		{".package.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateManifestFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "package.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		root string
		code Code
	}{
		{"directory", dir, ""},
		{"empty", "", ErrCodeInvalidPath},
		{"control char", "dir\x00", ErrCodeInvalidPath},
		{"missing", filepath.Join(dir, "missing"), ErrCodeFileNotFound},
		{"file", file, ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoot(tt.root)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("ValidateRoot(%q) unexpected error: %v", tt.root, err)
				}
				return
			}
			if got := GetCode(err); got != tt.code {
				t.Errorf("ValidateRoot(%q) code = %v, want %v", tt.root, got, tt.code)
			}
		})
	}
}
