package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/reelscribe/internal/browser"
	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/insights"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/media"
	"github.com/nguyentantai21042004/reelscribe/internal/pipeline"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
	"github.com/nguyentantai21042004/reelscribe/internal/storage"
	"github.com/nguyentantai21042004/reelscribe/internal/transcribe"
	"github.com/nguyentantai21042004/reelscribe/pkg/executor"
)

func main() {
	var (
		url         = flag.String("url", "", "post URL to process (required)")
		configPath  = flag.String("config", "config.yaml", "path to the yaml config file")
		dataDir     = flag.String("data-dir", "", "output directory (overrides config)")
		interval    = flag.Int("interval", 0, "seconds between screenshots (overrides config)")
		maxDuration = flag.Int("max-duration", 0, "screenshot capture bound in seconds (overrides config)")
		model       = flag.String("model", "", "whisper model: tiny, base, small, medium, large (overrides config)")
		headless    = flag.Bool("headless", true, "run the browser headless")
	)
	flag.Parse()

	if *url == "" {
		fmt.Fprintln(os.Stderr, "usage: reelscribe -url <post url> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Optional .env for GEMINI_API_KEYS; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags beat the config file, but only the flags actually passed.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data-dir":
			cfg.Paths.Data = *dataDir
		case "interval":
			cfg.Capture.IntervalSeconds = *interval
		case "max-duration":
			cfg.Capture.MaxDurationSeconds = *maxDuration
		case "model":
			cfg.Whisper.Model = *model
		case "headless":
			cfg.Browser.Headless = *headless
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Warn(ctx, "received %s, finishing with what we have", sig)
		cancel()
	}()

	exec := executor.New()
	layout := storage.NewLayout(cfg.Paths.Data)
	acquirer := media.New(cfg, exec, log)
	transcriber := transcribe.New(cfg, exec, log)
	ins := insights.New(geminiKeys(), cfg.Gemini.Model, log)

	newSession := func(ctx context.Context) (browser.Session, error) {
		return browser.New(ctx, cfg.Browser, log)
	}

	p := pipeline.New(cfg, layout, newSession, acquirer, transcriber, ins, log)

	run, err := p.Run(ctx, *url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSummary(run)
	if !run.HasAnyResult() {
		os.Exit(1)
	}
}

// loadConfig reads the config file when present and falls back to defaults
// when it is not, so the tool works with flags alone.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// geminiKeys reads the comma separated GEMINI_API_KEYS variable. No keys
// just disables the summary step.
func geminiKeys() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		return nil
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func printSummary(run *reel.PipelineRun) {
	fmt.Printf("post %s (run %s)\n", run.PostID, run.RunID)
	for _, stage := range []string{reel.StageCapture, reel.StageAcquisition, reel.StageTranscription, reel.StageInsights} {
		res := run.Stages[stage]
		if res.Reason != "" {
			fmt.Printf("  %-13s %s (%s)\n", stage, res.Status, res.Reason)
		} else {
			fmt.Printf("  %-13s %s\n", stage, res.Status)
		}
	}

	if run.Capture != nil && len(run.Capture.Frames) > 0 {
		fmt.Printf("  screenshots:  %d frames\n", len(run.Capture.Frames))
	}
	if run.Media != nil && run.Media.VideoPath != "" {
		fmt.Printf("  video:        %s\n", run.Media.VideoPath)
	}
	if run.Media != nil && run.Media.AudioPath != "" {
		fmt.Printf("  audio:        %s\n", run.Media.AudioPath)
	}
	if run.Transcript != nil && run.Transcript.FullText != "" {
		fmt.Printf("  transcript:   %d segments\n", len(run.Transcript.Segments))
	}
}
