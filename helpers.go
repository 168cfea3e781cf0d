package repolink

import "github.com/labstack/echo/v4"

// RequestURL returns the fully-qualified URL the client requested: scheme,
// host, path and query. Fragments never reach the server.
func RequestURL(c echo.Context) string {
	r := c.Request()
	return c.Scheme() + "://" + r.Host + r.URL.RequestURI()
}
