package repolink

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/repolink/views"
)

// handleIndex serves the repository link page for the URL it was requested at.
func (a *App) handleIndex(c echo.Context) error {
	pageURL := RequestURL(c)
	if !a.Cache.Contains(pageURL) && !a.renderLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many requests. Try again later.")
	}
	doc, err := a.RenderPage(c.Request().Context(), pageURL)
	if err != nil {
		return err
	}
	return Render(c, doc)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.Config))
}

func (a *App) handleSitemap(c echo.Context) error {
	body, err := sitemapXML(a.Config)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		a.renderError(c, http.StatusNotFound, "Not Found", views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		a.renderError(c, code, "Server Error", views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

func (a *App) renderError(c echo.Context, code int, title string, body templ.Component) {
	doc, err := a.renderMessage(c.Request().Context(), title, body)
	if err != nil {
		c.Logger().Errorf("render %d page: %v", code, err)
		_ = c.String(code, http.StatusText(code))
		return
	}
	_ = RenderStatus(c, code, doc)
}
