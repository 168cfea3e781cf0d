package views

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// NotFound renders the body of the 404 document.
func NotFound() templ.Component {
	return message("Page not found", "There is nothing here. The repository link lives on the home page.")
}

// ServerError renders the body of the 5xx document.
func ServerError() templ.Component {
	return message("Something went wrong", "The page could not be rendered. Try again in a moment.")
}

func message(title, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="page"><section class="panel"><header class="panel-header"><h1>`+
			html.EscapeString(title)+`</h1><p class="lead">`+html.EscapeString(text)+
			`</p><p><a class="button" href="/">Go home</a></p></header></section></main>`)
		return err
	})
}
