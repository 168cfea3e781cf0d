package views

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	githubIcon = `<svg class="icon icon-lg" aria-hidden="true" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		`<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/>` +
		`<path d="M9 18c-4.51 2-5-2-7-2"/></svg>`
	externalLinkIcon = `<svg class="icon icon-sm" aria-hidden="true" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
		`<path d="M15 3h6v6"/><path d="M10 14 21 3"/><path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/></svg>`
)

// LinkCard renders a card that opens href in a new browsing context without
// an opener handle or referrer. href is displayed and linked as given.
func LinkCard(href string) templ.Component {
	return linkCard(DefaultRepoName, href)
}

func linkCard(name, href string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="card">`)
		b.WriteString(`<div class="card-header">`)
		b.WriteString(`<h3 class="card-title">Open on GitHub</h3>`)
		b.WriteString(`<p class="card-description">View the `)
		b.WriteString(html.EscapeString(name))
		b.WriteString(` repository and code.</p>`)
		b.WriteString(`</div>`)

		b.WriteString(`<div class="card-content"><div class="card-link">`)
		b.WriteString(githubIcon)
		b.WriteString(`<span class="break-all">`)
		b.WriteString(html.EscapeString(href))
		b.WriteString(`</span></div></div>`)

		b.WriteString(`<div class="card-footer"><a class="button button-lg"`)
		attr(&b, "href", href)
		attr(&b, "target", "_blank")
		attr(&b, "rel", "noopener noreferrer")
		attr(&b, "aria-label", "Open "+name+" repository on GitHub")
		b.WriteString(`>Visit Repository`)
		b.WriteString(externalLinkIcon)
		b.WriteString(`</a></div>`)
		b.WriteString(`</div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
