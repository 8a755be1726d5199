package http

import "testing"

func TestGetHeader(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		header string
		want   string
	}{
		{
			name:   "present",
			raw:    "GET /user-agent HTTP/1.1\r\nHost: localhost\r\nUser-Agent: test-client/1.0\r\n\r\n",
			header: HeaderUserAgent,
			want:   "test-client/1.0",
		},
		{
			name:   "absent",
			raw:    "GET /user-agent HTTP/1.1\r\nHost: localhost\r\n\r\n",
			header: HeaderUserAgent,
			want:   "",
		},
		{
			name:   "last occurrence wins",
			raw:    "GET / HTTP/1.1\r\nUser-Agent: first\r\nHost: x\r\nUser-Agent: second\r\n\r\n",
			header: HeaderUserAgent,
			want:   "second",
		},
		{
			name:   "value keeps inner spaces",
			raw:    "GET / HTTP/1.1\r\nUser-Agent: curl/8.0 (x86_64 linux)\r\n\r\n",
			header: HeaderUserAgent,
			want:   "curl/8.0 (x86_64 linux)",
		},
		{
			name:   "body lines are not headers",
			raw:    "POST /files/a HTTP/1.1\r\nHost: x\r\n\r\nUser-Agent: smuggled",
			header: HeaderUserAgent,
			want:   "",
		},
		{
			name:   "case sensitive prefix",
			raw:    "GET / HTTP/1.1\r\nuser-agent: lower\r\n\r\n",
			header: HeaderUserAgent,
			want:   "",
		},
		{
			name:   "no blank line scans to end",
			raw:    "GET / HTTP/1.1\r\nUser-Agent: truncated",
			header: HeaderUserAgent,
			want:   "truncated",
		},
		{
			name:   "bare LF line endings",
			raw:    "GET / HTTP/1.1\nAccept-Encoding: gzip\n\n",
			header: HeaderAcceptEncoding,
			want:   "gzip",
		},
		{
			name:   "empty value",
			raw:    "GET / HTTP/1.1\r\nUser-Agent: \r\n\r\n",
			header: HeaderUserAgent,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetHeader(tt.raw, tt.header); got != tt.want {
				t.Errorf("GetHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func BenchmarkGetHeader(b *testing.B) {
	raw := "GET /echo/abc HTTP/1.1\r\nHost: localhost:4221\r\nUser-Agent: bench/1.0\r\nAccept-Encoding: br, gzip\r\n\r\n"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetHeader(raw, HeaderUserAgent)
	}
}
