package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config fills defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative interval rejected",
			config: Config{
				Capture: CaptureConfig{IntervalSeconds: -1},
			},
			wantErr: true,
		},
		{
			name: "negative max duration rejected",
			config: Config{
				Capture: CaptureConfig{MaxDurationSeconds: -10},
			},
			wantErr: true,
		},
		{
			name: "explicit values preserved",
			config: Config{
				Capture: CaptureConfig{IntervalSeconds: 5, MaxDurationSeconds: 30},
				Whisper: WhisperConfig{Model: "medium"},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Capture.Interval() != 2*time.Second {
		t.Errorf("default interval = %v, want 2s", cfg.Capture.Interval())
	}
	if cfg.Capture.MaxDuration() != 60*time.Second {
		t.Errorf("default max duration = %v, want 60s", cfg.Capture.MaxDuration())
	}
	if cfg.Whisper.Model != "base" {
		t.Errorf("default model = %q, want base", cfg.Whisper.Model)
	}
	if cfg.YtDlp.Attempts != 3 {
		t.Errorf("default attempts = %d, want 3", cfg.YtDlp.Attempts)
	}
	if cfg.FFmpeg.SampleRate != 16000 {
		t.Errorf("default sample rate = %d, want 16000", cfg.FFmpeg.SampleRate)
	}
	if cfg.Paths.Data != "./data" {
		t.Errorf("default data dir = %q, want ./data", cfg.Paths.Data)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
capture:
  interval_seconds: 3
  max_duration_seconds: 45

whisper:
  binary_path: "./whisper"
  model_dir: "models"
  model: "small"
  language: "en"

paths:
  data: "/tmp/reels"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Capture.IntervalSeconds != 3 {
		t.Errorf("IntervalSeconds = %d, want 3", cfg.Capture.IntervalSeconds)
	}
	if cfg.Whisper.Model != "small" {
		t.Errorf("Model = %q, want small", cfg.Whisper.Model)
	}
	if cfg.Paths.Data != "/tmp/reels" {
		t.Errorf("Data = %q, want /tmp/reels", cfg.Paths.Data)
	}
	// Unset sections still get defaults.
	if cfg.YtDlp.BinaryPath != "yt-dlp" {
		t.Errorf("BinaryPath = %q, want yt-dlp", cfg.YtDlp.BinaryPath)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
