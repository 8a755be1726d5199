/*
Package httplite is a minimal HTTP/1.1 server that answers exactly one
request per TCP connection.

Each accepted connection is read once into a fixed 1024-byte buffer,
dispatched to a route handler and closed. Larger requests are truncated.
The server understands a handful of endpoints:

  - GET /                 bare 200 OK
  - GET /echo/{text}      text echoed back as text/plain
  - GET /user-agent       the request's User-Agent header
  - GET /files/{name}     a file under the serving directory
  - POST /files/{name}    request body stored under the serving directory

Everything else answers 404 Not Found. Response bodies are gzip
compressed when the client lists gzip in Accept-Encoding.

Quick Start

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	application, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	application.Run(context.Background())

Run the bundled binary with:

	go run ./cmd/http-lite --directory /tmp/files/

Modules

  - app: Application lifecycle and logging
  - config: Flags, JSON file and environment configuration
  - core: Engine, accept loop and per-connection handling
  - core/http: Request parsing, headers, gzip negotiation and response framing
  - core/router: Ordered exact and prefix route table
  - core/handlers: Endpoint implementations
  - core/files: Serving directory access
  - core/middleware: Handler pipeline (panic recovery, request logging)
  - core/pools: Read buffer and gzip writer pools
  - core/observability: Per-route request monitor
  - core/admin: Optional stats endpoint over HTTP/1.1 and h2c
*/
package httplite
