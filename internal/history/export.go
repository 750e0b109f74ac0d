package history

import (
	"fmt"
	"os"
	"strings"

	"github.com/nkumar/govbot/internal/render"
)

// ExportMarkdown writes a transcript as a markdown document. Bot messages go
// through the reply converter so no portal markup leaks into the export.
func ExportMarkdown(tr *Transcript, path string) error {
	if tr == nil {
		return fmt.Errorf("nil transcript")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", tr.Title)
	fmt.Fprintf(&b, "- Portal: %s\n", tr.BaseURL)
	fmt.Fprintf(&b, "- Started: %s\n", tr.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- Messages: %d\n\n", len(tr.Messages))

	for _, msg := range tr.Messages {
		label := "You"
		text := msg.Text
		if msg.Sender == "bot" {
			label = "GovBot"
			text = render.ReplyToMarkdown(msg.Text)
		}
		fmt.Fprintf(&b, "**%s** (%s):\n\n%s\n\n---\n\n", label, msg.Timestamp.Format("15:04:05"), text)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return nil
}
