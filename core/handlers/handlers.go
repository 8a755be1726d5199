// Package handlers implements the server's endpoints: the root, echo,
// user-agent reflection and file read/write under a serving root.
package handlers

import (
	"fmt"

	"github.com/searchktools/http-lite/core/files"
	"github.com/searchktools/http-lite/core/http"
)

// Registrar is the subset of the engine used to mount routes.
type Registrar interface {
	GET(pattern string, handler http.HandlerFunc)
	POST(pattern string, handler http.HandlerFunc)
}

// Register mounts every endpoint. File routes resolve names under root.
func Register(r Registrar, root files.Root) {
	fh := &FileHandler{Root: root}

	r.GET("/", Root)
	r.GET("/echo/*text", Echo)
	r.GET("/user-agent", UserAgent)
	r.GET("/files/*name", fh.Get)
	r.POST("/files/*name", fh.Post)
}

// Root answers with a bare 200.
func Root(ctx *http.Context) error {
	ctx.Status(http.StatusOK)
	return nil
}

// Echo returns the path remainder after /echo/ as plain text.
func Echo(ctx *http.Context) error {
	return ctx.Content(ctx.Param("text"), http.MIMETextPlain)
}

// UserAgent reflects the User-Agent header, or answers 404 when it is
// missing or empty.
func UserAgent(ctx *http.Context) error {
	ua := ctx.Header(http.HeaderUserAgent)
	if ua == "" {
		ctx.Status(http.StatusNotFound)
		return nil
	}
	return ctx.Content(ua, http.MIMETextPlain)
}

// FileHandler serves and stores files under Root.
type FileHandler struct {
	Root files.Root
}

// Get returns the named file as an octet stream. Any read failure,
// including a file that is not text, is answered with 404.
func (h *FileHandler) Get(ctx *http.Context) error {
	text, err := h.Root.ReadText(ctx.Param("name"))
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return nil
	}
	return ctx.Content(text, http.MIMEOctetStream)
}

// Post writes the request body to the named file and answers 201. Create
// and write failures are returned to the caller.
func (h *FileHandler) Post(ctx *http.Context) error {
	name := ctx.Param("name")
	if err := h.Root.WriteText(name, ctx.Request().Body()); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	ctx.Status(http.StatusCreated)
	return nil
}
