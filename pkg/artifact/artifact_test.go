package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"resume-studio/pkg/profile"
)

func testProfile() (p profile.UserProfile) {
	p = profile.UserProfile{
		Name:       "Jane Doe",
		Role:       "Engineer",
		Phone:      "555-0100",
		Email:      "jane@ex.com",
		Skills:     "Go",
		Experience: "X",
		Education:  "Y",
	}
	return p
}

func TestPackage(t *testing.T) {
	tmpDir := t.TempDir()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	text := "EXPERIENCE\n- Did X\n"
	settings := Settings{
		Model:    "Mistral Large",
		Template: "Professional",
		Font:     "Arial",
		FontSize: 11,
	}

	set, err := Package(testProfile(), text, settings, "Arial", now, tmpDir)
	if err != nil {
		t.Fatalf("Package failed: %v", err)
	}

	wantBase := "resume_Jane_Doe_20240101_120000"
	for _, path := range []string{set.TextPath, set.JSONPath, set.PDFPath} {
		if !strings.HasPrefix(filepath.Base(path), wantBase) {
			t.Errorf("Artifact %s does not share base name %s", path, wantBase)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Artifact missing: %v", err)
		}
	}

	raw, err := os.ReadFile(set.TextPath)
	if err != nil {
		t.Fatalf("Failed to read text artifact: %v", err)
	}
	if string(raw) != text {
		t.Errorf("Text artifact altered: %q", string(raw))
	}

	data, err := os.ReadFile(set.JSONPath)
	if err != nil {
		t.Fatalf("Failed to read JSON artifact: %v", err)
	}

	var record Record
	err = json.Unmarshal(data, &record)
	if err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}
	if record.UserData.Name != "Jane Doe" {
		t.Errorf("Expected user name Jane Doe, got %q", record.UserData.Name)
	}
	if record.GeneratedText != text {
		t.Errorf("Record text altered: %q", record.GeneratedText)
	}
	if record.Settings != settings {
		t.Errorf("Expected settings %+v, got %+v", settings, record.Settings)
	}
	if _, err := time.Parse(time.RFC3339, record.Timestamp); err != nil {
		t.Errorf("Record timestamp not RFC3339: %q", record.Timestamp)
	}
}

func TestPackageCreatesOutputDir(t *testing.T) {
	tmpDir := t.TempDir()
	outputDir := filepath.Join(tmpDir, "deep", "resumes")

	_, err := Package(testProfile(), "EXPERIENCE\n- Did X\n", Settings{Font: "Arial", FontSize: 11}, "Arial", time.Now(), outputDir)
	if err != nil {
		t.Fatalf("Package failed: %v", err)
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to underscores", "Jane Doe", "Jane_Doe"},
		{"accents kept", "José García", "José_García"},
		{"punctuation stripped", "O'Brien, Jr.", "OBrien_Jr"},
		{"hyphen kept", "Mary-Jane", "Mary-Jane"},
		{"unmappable letters collapse", "名前", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeName(tt.input)
			if got != tt.want {
				t.Errorf("SafeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
