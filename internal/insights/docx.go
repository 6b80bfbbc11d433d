package insights

import (
	"fmt"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/reelscribe/internal/reel"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// ExportDocx renders the run's transcript as a document: heading, scraped
// caption, then one timestamped paragraph per segment.
func (s *implInsights) ExportDocx(run *reel.PipelineRun, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc, "Transcript: "+run.PostID, 16)

	if run.Caption != "" {
		addHeading(doc, "Caption", 14)
		addBody(doc, run.Caption)
	}

	if run.Transcript != nil && len(run.Transcript.Segments) > 0 {
		addHeading(doc, "Speech", 14)
		for _, seg := range run.Transcript.Segments {
			addBody(doc, fmt.Sprintf("[%s] %s", formatOffset(seg.Start), seg.Text))
		}
	} else {
		addBody(doc, "No speech transcript available.")
	}

	return doc.SaveTo(outputPath)
}

func addHeading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(size).Color("000000").Bold(true)
}

func addBody(doc *docx.RootDoc, text string) {
	p := doc.AddParagraph("")
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}

// formatOffset renders a segment start as m:ss.
func formatOffset(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
