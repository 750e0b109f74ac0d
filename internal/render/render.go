package render

// Markdown renders markdown content for terminal display.
// Uses a pooled renderer for better performance and thread safety.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// Reply converts a portal bot reply (which may embed markup) to markdown and
// renders it for the terminal.
func Reply(reply string, opts Options) (string, error) {
	return Markdown(ReplyToMarkdown(reply), opts)
}

// ReplyWithWidth is a convenience function for rendering a bot reply with
// default options and a specific width.
func ReplyWithWidth(reply string, width int) (string, error) {
	return Reply(reply, DefaultOptions().WithWidth(width))
}
