package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gomutex/godocx"
)

const (
	dateMarker    = "[DATE]"
	summaryMarker = "[SUMMARY_TEXT]"

	dateLayout = "02.01.2006 15:04"

	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// defaultTemplate is the skeleton synthesized when none exists on disk.
const defaultTemplate = `Voice Note Report
Created: ` + dateMarker + `
Contents:
` + summaryMarker + `
`

// EnsureTemplate writes the default skeleton to path if the file is
// absent. An existing file is left untouched.
func EnsureTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// Render substitutes the date and summary markers in the skeleton and
// writes a docx to outputPath. A missing or malformed skeleton degrades to
// a minimal document; a reduced-fidelity artifact always beats no artifact.
func (e *implEmitter) Render(ctx context.Context, summaryText string, when time.Time, outputPath string) error {
	date := when.Format(dateLayout)

	content, err := os.ReadFile(e.templatePath)
	if err == nil {
		text := string(content)
		if strings.Contains(text, dateMarker) && strings.Contains(text, summaryMarker) {
			text = strings.ReplaceAll(text, dateMarker, date)
			text = strings.ReplaceAll(text, summaryMarker, summaryText)

			if err := writeDocx(text, outputPath); err == nil {
				return nil
			}
			e.logger.Warn(ctx, "Template rendering failed, using fallback document: %v", err)
		} else {
			e.logger.Warn(ctx, "Template %s is missing placeholders, using fallback document", e.templatePath)
		}
	} else {
		e.logger.Warn(ctx, "Template unreadable, using fallback document: %v", err)
	}

	return renderFallback(summaryText, date, outputPath)
}

// writeDocx renders substituted skeleton text into a styled document. The
// first non-empty line becomes the title.
func writeDocx(text, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	first := true
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		p := doc.AddParagraph("")
		if first {
			p.AddText(trimmed).Font(fontName).Size(titleSize).Color("000000").Bold(true)
			first = false
		} else {
			p.AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
		}
	}

	return doc.SaveTo(outputPath)
}

// renderFallback synthesizes a minimal document: title, date, raw summary.
func renderFallback(summaryText, date, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create fallback document: %w", err)
	}

	doc.AddParagraph("").AddText("Report").Font(fontName).Size(titleSize).Color("000000").Bold(true)
	doc.AddParagraph("").AddText("Created: " + date).Font(fontName).Size(fontSize).Color("000000")
	doc.AddParagraph("").AddText(summaryText).Font(fontName).Size(fontSize).Color("000000")

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save fallback document: %w", err)
	}
	return nil
}
