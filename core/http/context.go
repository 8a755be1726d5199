package http

import "sync"

// HandlerFunc handles one dispatched request. A returned error aborts the
// connection without a guaranteed response.
type HandlerFunc func(ctx *Context) error

// Context carries a request through a handler and accumulates the bytes
// that will be written back.
type Context struct {
	request *Request
	route   string

	// Path parameters (fixed array, routes capture at most one)
	paramKeys   [2]string
	paramValues [2]string
	paramCount  int

	// Response buffer (pre-allocated)
	responseBuf []byte
}

var contextPool = sync.Pool{
	New: func() any {
		return &Context{
			responseBuf: make([]byte, 0, 1024),
		}
	},
}

// NewContext creates a context outside the pool.
func NewContext(req *Request) *Context {
	return &Context{
		request:     req,
		responseBuf: make([]byte, 0, 1024),
	}
}

func AcquireContext(req *Request) *Context {
	ctx := contextPool.Get().(*Context)
	ctx.Reset(req)
	return ctx
}

func ReleaseContext(ctx *Context) {
	ctx.Reset(nil)
	contextPool.Put(ctx)
}

// Reset prepares the context for req, keeping buffer capacity.
func (c *Context) Reset(req *Request) {
	c.request = req
	c.route = ""
	for i := 0; i < c.paramCount; i++ {
		c.paramKeys[i] = ""
		c.paramValues[i] = ""
	}
	c.paramCount = 0
	c.responseBuf = c.responseBuf[:0]
}

func (c *Context) Request() *Request {
	return c.request
}

func (c *Context) Method() string {
	return c.request.Method
}

func (c *Context) Path() string {
	return c.request.Path
}

// Header looks up a header by its literal line prefix, e.g. HeaderUserAgent.
func (c *Context) Header(name string) string {
	return c.request.Header(name)
}

// Route returns the pattern the request was dispatched on.
func (c *Context) Route() string {
	return c.route
}

func (c *Context) SetRoute(route string) {
	c.route = route
}

func (c *Context) SetParam(key, value string) {
	if c.paramCount < len(c.paramKeys) {
		c.paramKeys[c.paramCount] = key
		c.paramValues[c.paramCount] = value
		c.paramCount++
	}
}

func (c *Context) Param(key string) string {
	for i := 0; i < c.paramCount; i++ {
		if c.paramKeys[i] == key {
			return c.paramValues[i]
		}
	}
	return ""
}

// Status replaces the response with one of the fixed status literals.
func (c *Context) Status(literal string) {
	c.responseBuf = append(c.responseBuf[:0], literal...)
}

// Content replaces the response with a 200 carrying content, compressed
// when the client negotiated gzip.
func (c *Context) Content(content, contentType string) error {
	out, err := AppendContent(c.responseBuf[:0], c.request, content, contentType)
	if err != nil {
		return err
	}
	c.responseBuf = out
	return nil
}

// Response returns the bytes accumulated so far. The slice is only valid
// until the context is reset or released.
func (c *Context) Response() []byte {
	return c.responseBuf
}
