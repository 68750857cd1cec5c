package media

import (
	"html"
	"strings"

	"article_importer/internal/domain"
)

// ImageBlock renders the css-classed image frame the host theme styles,
// optionally wrapped in a link and followed by the photo caption.
func ImageBlock(photo *domain.ResolvedPhoto, src, cssClass, imageLink string, useCaption bool) string {
	var sb strings.Builder

	sb.WriteString(`<div class="` + cssClass + `">`)
	if imageLink != "" {
		sb.WriteString(`<a href="` + imageLink + `">`)
	}
	sb.WriteString(`<img src="` + src + `" alt="` + html.EscapeString(photo.AltText) + `" />`)
	if imageLink != "" {
		sb.WriteString("</a>")
	}
	if useCaption {
		sb.WriteString(`<span class="caption">` + html.EscapeString(photo.Caption) + `</span>`)
	}
	sb.WriteString("</div>")

	return sb.String()
}

// PrependBlock puts a rendered block ahead of existing markup.
func PrependBlock(block, content string) string {
	return block + content
}
