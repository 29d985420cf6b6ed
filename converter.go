package docname

// Converter converts HTML to a textual form suitable for prompting.
type Converter interface {
	// Convert transforms HTML content into text or Markdown.
	Convert(html string) (string, error)
}
