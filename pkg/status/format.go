package status

import (
	"fmt"
	"strings"
)

// FileFormatter defines how file status and run summaries are formatted
type FileFormatter interface {
	// FormatFileStatus formats a file status message
	FormatFileStatus(info FileInfo) string

	// FormatSummary formats the per-status counts of a run
	FormatSummary(counts map[FileStatus]int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileStatus formats a file status message with emojis
func (f *DefaultFileFormatter) FormatFileStatus(info FileInfo) string {
	switch info.Status {
	case StatusWritten:
		return fmt.Sprintf("🎨 Recolored %s (%d replacements)", info.Path, info.Replacements)
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", info.Path)
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s: %v", info.Path, info.Error)
	case StatusClean:
		return fmt.Sprintf("👍 No match in %s", info.Path)
	default:
		return fmt.Sprintf("❔ Unknown %s", info.Path)
	}
}

// FormatSummary formats counts in a fixed order, leaving out zero counts
func (f *DefaultFileFormatter) FormatSummary(counts map[FileStatus]int) string {
	order := []FileStatus{StatusWritten, StatusSkipped, StatusFailed, StatusClean}

	var parts []string
	total := 0
	for _, s := range order {
		total += counts[s]
		if counts[s] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
	}
	if total == 0 {
		return "no files scanned"
	}
	return fmt.Sprintf("%d files scanned: %s", total, strings.Join(parts, ", "))
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
