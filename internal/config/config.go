package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Capture CaptureConfig `yaml:"capture"`
	Browser BrowserConfig `yaml:"browser"`
	YtDlp   YtDlpConfig   `yaml:"ytdlp"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Whisper WhisperConfig `yaml:"whisper"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type CaptureConfig struct {
	IntervalSeconds    int `yaml:"interval_seconds"`
	MaxDurationSeconds int `yaml:"max_duration_seconds"`
}

type BrowserConfig struct {
	Headless          bool   `yaml:"headless"`
	NavTimeoutSeconds int    `yaml:"nav_timeout_seconds"`
	UserAgent         string `yaml:"user_agent"`
	ViewportWidth     int    `yaml:"viewport_width"`
	ViewportHeight    int    `yaml:"viewport_height"`
}

type YtDlpConfig struct {
	BinaryPath             string `yaml:"binary_path"`
	Attempts               int    `yaml:"attempts"`
	RetryBackoffSeconds    int    `yaml:"retry_backoff_seconds"`
	DownloadTimeoutMinutes int    `yaml:"download_timeout_minutes"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Model      string `yaml:"model"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type PathsConfig struct {
	Data string `yaml:"data"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Interval returns the screenshot interval as a duration.
func (c CaptureConfig) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// MaxDuration returns the capture bound as a duration.
func (c CaptureConfig) MaxDuration() time.Duration {
	return time.Duration(c.MaxDurationSeconds) * time.Second
}

// NavTimeout returns the navigation timeout as a duration.
func (c BrowserConfig) NavTimeout() time.Duration {
	return time.Duration(c.NavTimeoutSeconds) * time.Second
}

// RetryBackoff returns the base backoff between download attempts.
func (c YtDlpConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSeconds) * time.Second
}

// DownloadTimeout bounds a single yt-dlp invocation.
func (c YtDlpConfig) DownloadTimeout() time.Duration {
	return time.Duration(c.DownloadTimeoutMinutes) * time.Minute
}

// Validate fills defaults and rejects values no stage can work with.
func (c *Config) Validate() error {
	if c.Capture.IntervalSeconds < 0 {
		return fmt.Errorf("capture.interval_seconds must not be negative")
	}
	if c.Capture.MaxDurationSeconds < 0 {
		return fmt.Errorf("capture.max_duration_seconds must not be negative")
	}

	if c.Capture.IntervalSeconds == 0 {
		c.Capture.IntervalSeconds = 2
	}
	if c.Capture.MaxDurationSeconds == 0 {
		c.Capture.MaxDurationSeconds = 60
	}
	if c.Browser.NavTimeoutSeconds == 0 {
		c.Browser.NavTimeoutSeconds = 60
	}
	if c.Browser.UserAgent == "" {
		c.Browser.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	}
	if c.Browser.ViewportWidth == 0 {
		c.Browser.ViewportWidth = 1280
	}
	if c.Browser.ViewportHeight == 0 {
		c.Browser.ViewportHeight = 800
	}
	if c.YtDlp.BinaryPath == "" {
		c.YtDlp.BinaryPath = "yt-dlp"
	}
	if c.YtDlp.Attempts == 0 {
		c.YtDlp.Attempts = 3
	}
	if c.YtDlp.RetryBackoffSeconds == 0 {
		c.YtDlp.RetryBackoffSeconds = 2
	}
	if c.YtDlp.DownloadTimeoutMinutes == 0 {
		c.YtDlp.DownloadTimeoutMinutes = 10
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "base"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.Data == "" {
		c.Paths.Data = "./data"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// Load reads and validates a yaml config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with every default applied. Used when no config
// file is present; CLI flags cover the per-run knobs.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}
