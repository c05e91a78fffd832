package server

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PageData is the content of the page shell.
type PageData struct {
	Title       string
	Stylesheets []string
	ScriptPath  string
	WSPath      string
}

// Page renders the HTML document the browser loads first: an empty mount
// container wired to the session endpoint, and the client script.
func Page(p PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		sb.WriteString("<meta charset=\"utf-8\">\n")
		sb.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		sb.WriteString("<title>" + templ.EscapeString(p.Title) + "</title>\n")
		for _, href := range p.Stylesheets {
			sb.WriteString("<link rel=\"stylesheet\" href=\"" + templ.EscapeString(href) + "\">\n")
		}
		sb.WriteString("<style>html, body, [data-ffui-root] { height: 100%; margin: 0; }</style>\n")
		sb.WriteString("</head>\n<body>\n")
		sb.WriteString("<div data-ffui-root data-ffui-ws=\"" + templ.EscapeString(p.WSPath) + "\"></div>\n")
		sb.WriteString("<script src=\"" + templ.EscapeString(p.ScriptPath) + "\" defer></script>\n")
		sb.WriteString("</body>\n</html>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
