package render

import (
	"strings"

	"golang.org/x/net/html"
)

// markdownEscaper neutralizes characters that would otherwise be interpreted
// as markdown once the converted reply reaches the terminal renderer.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
)

// ReplyToMarkdown converts a portal bot reply to markdown. The backend embeds
// a small fixed tag set (<b>, <i>, <br>, occasionally styled variants); those
// map to markdown, every other tag is dropped, and text content is escaped so
// nothing the server sends is ever rendered as raw markup.
func ReplyToMarkdown(reply string) string {
	if !strings.Contains(reply, "<") {
		return strings.TrimSpace(markdownEscaper.Replace(reply))
	}

	z := html.NewTokenizer(strings.NewReader(reply))
	var b strings.Builder

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			// io.EOF terminates; anything else means malformed markup, in
			// which case we keep what was converted so far.
			return strings.TrimSpace(b.String())

		case html.TextToken:
			b.WriteString(markdownEscaper.Replace(string(z.Text())))

		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "b", "strong":
				b.WriteString("**")
			case "i", "em":
				b.WriteString("*")
			case "code":
				b.WriteString("`")
			case "br":
				if tt != html.EndTagToken {
					b.WriteString("\n")
				}
			}
			// unknown tags are dropped, their text content is kept
		}
	}
}
