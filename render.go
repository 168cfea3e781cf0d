package repolink

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/repolink/head"
)

// Render writes a serialized HTML document as an HTTP 200 response.
func Render(c echo.Context, doc []byte) error {
	return RenderStatus(c, http.StatusOK, doc)
}

// RenderStatus writes a serialized HTML document with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, doc []byte) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	_, err := c.Response().Write(doc)
	return err
}

// renderMessage mounts a titled, non-indexable message body into the shell.
func (a *App) renderMessage(ctx context.Context, title string, body templ.Component) ([]byte, error) {
	return a.shell.mount(ctx, body, func(h *head.Head) {
		h.SetTitle(title + " – " + a.Config.Repo.Name)
		h.SetMeta("robots", "noindex")
	})
}
