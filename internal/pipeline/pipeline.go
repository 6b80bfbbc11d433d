package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/reelscribe/internal/capture"
	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

// captureOutcome is the capture branch's owned result, handed back to the
// controller over a channel.
type captureOutcome struct {
	session *reel.CaptureSession
	caption string
	err     error
}

// mediaOutcome is the acquisition branch's owned result.
type mediaOutcome struct {
	asset      *reel.MediaAsset
	extractErr error
	err        error
}

// Run drives one invocation: Initialized -> Capturing/Acquiring (concurrent)
// -> Transcribing -> Finalized. Only identifier extraction and output
// bootstrap abort the run; everything else degrades to a partial result.
func (p *implPipeline) Run(ctx context.Context, rawURL string) (*reel.PipelineRun, error) {
	postID, err := reel.ExtractPostID(rawURL)
	if err != nil {
		return nil, err
	}

	if err := p.layout.Bootstrap(postID); err != nil {
		return nil, fmt.Errorf("bootstrap output directories: %w", err)
	}

	run := &reel.PipelineRun{
		RunID:     uuid.New().String(),
		PostID:    postID,
		URL:       rawURL,
		StartedAt: time.Now().UTC(),
		Stages:    make(map[string]reel.StageResult),
	}
	p.logger.Info(ctx, "[%s] run %s started", postID, run.RunID)

	// Capture and acquisition have no data dependency and write to disjoint
	// directories, so they run as independent branches.
	captureCh := make(chan captureOutcome, 1)
	mediaCh := make(chan mediaOutcome, 1)
	go p.runCapture(ctx, rawURL, postID, captureCh)
	go p.runAcquisition(ctx, rawURL, postID, mediaCh)

	capOut := <-captureCh
	medOut := <-mediaCh

	p.mergeCapture(ctx, run, capOut)
	p.mergeAcquisition(ctx, run, medOut)
	p.runTranscription(ctx, run)
	p.runInsights(ctx, run)

	run.CompletedAt = time.Now().UTC()
	if err := p.layout.SaveRun(run); err != nil {
		p.logger.Error(ctx, "[%s] failed to persist run record: %v", postID, err)
	}

	p.logSummary(ctx, run)
	return run, nil
}

// runCapture owns the browser session for its whole lifetime: open, scrape
// the caption, drive the screenshot loop, close.
func (p *implPipeline) runCapture(ctx context.Context, rawURL, postID string, out chan<- captureOutcome) {
	loop, err := capture.New(postID, p.interval, p.maxDuration, p.logger)
	if err != nil {
		out <- captureOutcome{err: err}
		return
	}

	sess, err := p.newSession(ctx)
	if err != nil {
		out <- captureOutcome{err: err}
		return
	}
	defer func() {
		if err := sess.Close(); err != nil {
			p.logger.Warn(ctx, "[%s] session close: %v", postID, err)
		}
	}()

	if err := sess.Navigate(ctx, rawURL); err != nil {
		out <- captureOutcome{err: err}
		return
	}

	caption, err := sess.CaptionText(ctx)
	if err != nil {
		p.logger.Warn(ctx, "[%s] caption scrape failed: %v", postID, err)
	}

	session := loop.Run(ctx, sess, p.layout.ScreenshotDir(postID))
	out <- captureOutcome{session: session, caption: caption}
}

// runAcquisition downloads the video and, on success, derives the audio.
func (p *implPipeline) runAcquisition(ctx context.Context, rawURL, postID string, out chan<- mediaOutcome) {
	videoPath, err := p.acquirer.Download(ctx, rawURL, p.layout.VideoDir(), postID)
	if err != nil {
		out <- mediaOutcome{err: err}
		return
	}

	asset := &reel.MediaAsset{PostID: postID, VideoPath: videoPath}

	audioPath := p.layout.AudioPath(postID)
	if err := p.acquirer.ExtractAudio(ctx, videoPath, audioPath); err != nil {
		// Download stands; downstream just gets no transcript.
		out <- mediaOutcome{asset: asset, extractErr: err}
		return
	}

	asset.AudioPath = audioPath
	out <- mediaOutcome{asset: asset}
}

func (p *implPipeline) mergeCapture(ctx context.Context, run *reel.PipelineRun, out captureOutcome) {
	run.Caption = out.caption
	run.Capture = out.session

	switch {
	case out.err != nil:
		p.logger.Error(ctx, "[%s] capture stage failed: %v", run.PostID, out.err)
		run.SetStage(reel.StageCapture, reel.StageFailed, out.err.Error())
	case ctx.Err() != nil && len(out.session.Frames) < out.session.ScheduledTicks:
		run.SetStage(reel.StageCapture, reel.StagePartial,
			fmt.Sprintf("%s: %d of %d frames", reel.ErrCancelled, len(out.session.Frames), out.session.ScheduledTicks))
	case out.session.Degraded:
		run.SetStage(reel.StageCapture, reel.StagePartial,
			fmt.Sprintf("page unreachable: %d of %d frames", len(out.session.Frames), out.session.ScheduledTicks))
	case len(out.session.Frames) < out.session.ScheduledTicks:
		run.SetStage(reel.StageCapture, reel.StagePartial,
			fmt.Sprintf("%d of %d frames", len(out.session.Frames), out.session.ScheduledTicks))
	default:
		run.SetStage(reel.StageCapture, reel.StageOK, "")
	}
}

func (p *implPipeline) mergeAcquisition(ctx context.Context, run *reel.PipelineRun, out mediaOutcome) {
	run.Media = out.asset

	switch {
	case out.err != nil:
		p.logger.Error(ctx, "[%s] acquisition stage failed: %v", run.PostID, out.err)
		run.SetStage(reel.StageAcquisition, reel.StageFailed, out.err.Error())
	case out.extractErr != nil:
		p.logger.Error(ctx, "[%s] audio extraction failed: %v", run.PostID, out.extractErr)
		run.SetStage(reel.StageAcquisition, reel.StagePartial, out.extractErr.Error())
	default:
		run.SetStage(reel.StageAcquisition, reel.StageOK, "")
	}
}

// runTranscription strictly follows acquisition: it only runs with a
// successfully extracted audio file.
func (p *implPipeline) runTranscription(ctx context.Context, run *reel.PipelineRun) {
	if run.Media == nil || run.Media.AudioPath == "" {
		run.SetStage(reel.StageTranscription, reel.StageSkipped, "no audio available")
		return
	}

	result, err := p.transcriber.Transcribe(ctx, run.PostID, run.Media.AudioPath, p.cfg.Whisper.Model)
	if err != nil {
		p.logger.Error(ctx, "[%s] transcription stage failed: %v", run.PostID, err)
		run.SetStage(reel.StageTranscription, reel.StageFailed, err.Error())
		return
	}

	run.Transcript = result
	run.SetStage(reel.StageTranscription, reel.StageOK, "")
}

// runInsights produces the optional docx export and model summary.
func (p *implPipeline) runInsights(ctx context.Context, run *reel.PipelineRun) {
	if run.Transcript == nil && run.Caption == "" {
		run.SetStage(reel.StageInsights, reel.StageSkipped, "nothing to export")
		return
	}

	status := reel.StageOK
	reason := ""

	if err := p.insights.ExportDocx(run, p.layout.TranscriptDocxPath(run.PostID)); err != nil {
		p.logger.Warn(ctx, "[%s] docx export failed: %v", run.PostID, err)
		status, reason = reel.StagePartial, "docx export failed"
	}

	if p.insights.CanSummarize() {
		if err := p.insights.Summarize(ctx, run, p.layout.SummaryPath(run.PostID)); err != nil {
			p.logger.Warn(ctx, "[%s] summary failed: %v", run.PostID, err)
			status, reason = reel.StagePartial, "summary failed"
		}
	}

	run.SetStage(reel.StageInsights, status, reason)
}

func (p *implPipeline) logSummary(ctx context.Context, run *reel.PipelineRun) {
	p.logger.Info(ctx, "[%s] run %s finalized in %s", run.PostID, run.RunID, run.CompletedAt.Sub(run.StartedAt).Round(time.Millisecond))
	for _, stage := range []string{reel.StageCapture, reel.StageAcquisition, reel.StageTranscription, reel.StageInsights} {
		res := run.Stages[stage]
		if res.Reason != "" {
			p.logger.Info(ctx, "[%s]   %-13s %s (%s)", run.PostID, stage, res.Status, res.Reason)
		} else {
			p.logger.Info(ctx, "[%s]   %-13s %s", run.PostID, stage, res.Status)
		}
	}
}
