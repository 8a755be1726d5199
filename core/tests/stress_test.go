package tests

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/searchktools/http-lite/core"
	"github.com/searchktools/http-lite/core/files"
	"github.com/searchktools/http-lite/core/handlers"
	"github.com/searchktools/http-lite/core/observability"
)

func startEngine(t *testing.T) (string, *observability.Monitor) {
	t.Helper()

	mon := observability.NewMonitor()
	e := core.NewEngine(core.Options{Logger: zerolog.Nop(), Monitor: mon})
	handlers.Register(e, files.Root(t.TempDir()+"/"))

	ln, err := e.Listen(context.Background(), "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen error: %v", err)
	}
	go e.Serve(ln)
	t.Cleanup(func() { ln.Close() })

	return ln.Addr().String(), mon
}

func do(addr, req string) (string, error) {
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return "", err
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(5 * time.Second))
	if _, err := conn.Write([]byte(req)); err != nil {
		return "", err
	}
	resp, err := io.ReadAll(conn)
	return string(resp), err
}

// TestConcurrentConnections checks every connection gets its own answer
// while other clients are served in parallel.
func TestConcurrentConnections(t *testing.T) {
	addr, mon := startEngine(t)

	const clients = 50
	var wg sync.WaitGroup
	errs := make(chan error, clients)

	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			text := fmt.Sprintf("client-%d", i)
			resp, err := do(addr, "GET /echo/"+text+" HTTP/1.1\r\n\r\n")
			if err != nil {
				errs <- err
				return
			}
			want := fmt.Sprintf("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: %d\r\n\r\n%s", len(text), text)
			if resp != want {
				errs <- fmt.Errorf("client %d got %q", i, resp)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
	if got := mon.Snapshot().TotalRequests; got != clients {
		t.Errorf("Expected %d recorded requests, got %d", clients, got)
	}
}

// TestSilentClientDoesNotBlockOthers holds a connection open without
// sending anything and checks the accept loop keeps serving.
func TestSilentClientDoesNotBlockOthers(t *testing.T) {
	addr, _ := startEngine(t)

	idle, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer idle.Close()

	resp, err := do(addr, "GET / HTTP/1.1\r\n\r\n")
	if err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if resp != "HTTP/1.1 200 OK\r\n\r\n" {
		t.Errorf("Unexpected response %q", resp)
	}
}

// TestFailingConnectionIsolated sends invalid UTF-8, which aborts that
// connection without a response, then checks the server still answers.
func TestFailingConnectionIsolated(t *testing.T) {
	addr, _ := startEngine(t)

	resp, err := do(addr, "GET /\xff HTTP/1.1\r\n\r\n")
	if err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if resp != "" {
		t.Errorf("Expected no response, got %q", resp)
	}

	resp, err = do(addr, "GET /nope HTTP/1.1\r\n\r\n")
	if err != nil {
		t.Fatalf("Request error: %v", err)
	}
	if resp != "HTTP/1.1 404 Not Found\r\n\r\n" {
		t.Errorf("Unexpected response %q", resp)
	}
}

func BenchmarkLoopbackEcho(b *testing.B) {
	mon := observability.NewMonitor()
	e := core.NewEngine(core.Options{Logger: zerolog.Nop(), Monitor: mon})
	handlers.Register(e, files.Root(b.TempDir()+"/"))

	ln, err := e.Listen(context.Background(), "127.0.0.1:0")
	if err != nil {
		b.Fatal(err)
	}
	defer ln.Close()
	go e.Serve(ln)

	addr := ln.Addr().String()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := do(addr, "GET /echo/bench HTTP/1.1\r\n\r\n"); err != nil {
			b.Fatal(err)
		}
	}
}
