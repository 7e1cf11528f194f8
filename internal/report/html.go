package report

import "github.com/russross/blackfriday/v2"

// RenderHTML turns the Markdown report into a standalone HTML page. Formula
// blocks are left as literal text.
func RenderHTML(markdown, title string) []byte {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CompletePage | blackfriday.HrefTargetBlank,
		Title: title,
	})
	return blackfriday.Run([]byte(markdown),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(renderer),
	)
}
