package web

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!doctype html>
<html>
<head>
  <title> Asmara   Guide </title>
  <style>body { color: red; }</style>
  <script>var tracking = "ignore me";</script>
</head>
<body>
  <h1>Welcome to Asmara</h1>
  <p>The capital   of Eritrea,
     known for its architecture.</p>
  <noscript>Enable JavaScript</noscript>
</body>
</html>`

func TestFetchText_HTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "ai-dashboard")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	page, err := NewFetcher(time.Second, 0, nil, AllowPrivateNetworks()).FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Asmara Guide", page.Title)
	assert.Equal(t, "Welcome to Asmara The capital of Eritrea, known for its architecture.", page.Text)
	assert.NotContains(t, page.Text, "tracking")
	assert.NotContains(t, page.Text, "color")
	assert.NotContains(t, page.Text, "Enable JavaScript")
}

func TestFetchText_PlainTextAndLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("one  two\n\nthree " + strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	page, err := NewFetcher(time.Second, 15, nil, AllowPrivateNetworks()).FetchText(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "one two three", page.Text)
}

func TestFetchText_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher(time.Second, 0, nil, AllowPrivateNetworks())

	_, err := f.FetchText(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")

	for _, bad := range []string{"ftp://example.com/file", "file:///etc/passwd", "/relative", "::"} {
		_, err := f.FetchText(context.Background(), bad)
		assert.ErrorIs(t, err, ErrUnsupportedURL, bad)
	}
}

func TestFetchText_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher(time.Second, 0, nil, AllowPrivateNetworks()).FetchText(ctx, srv.URL)
	require.Error(t, err)
}

func TestFetchText_BlocksNonPublicAddresses(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("internal admin secret"))
	}))
	defer srv.Close()

	page, err := NewFetcher(time.Second, 0, nil).FetchText(context.Background(), srv.URL)
	require.ErrorIs(t, err, ErrBlockedAddress)
	assert.Nil(t, page)
	assert.Zero(t, hits.Load())
}

func TestFetchText_BlocksHostnameResolvingToLoopback(t *testing.T) {
	var hits atomic.Int32
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("metadata"))
	}))
	defer internal.Close()

	// Resolves through the dial check like any hostname would.
	u := strings.Replace(internal.URL, "127.0.0.1", "localhost", 1)
	_, err := NewFetcher(time.Second, 0, nil).FetchText(context.Background(), u)
	require.ErrorIs(t, err, ErrBlockedAddress)
	assert.Zero(t, hits.Load())
}

func TestBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},
		{"169.254.169.254", true},
		{"10.1.2.3", true},
		{"172.16.0.9", true},
		{"192.168.1.1", true},
		{"0.0.0.0", true},
		{"::1", true},
		{"fd00::1", true},
		{"fe80::1", true},
		{"::ffff:127.0.0.1", true},
		{"93.184.216.34", false},
		{"2606:4700::1111", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.blocked, blockedIP(net.ParseIP(tt.ip)))
		})
	}

	assert.NoError(t, publicOnly("tcp4", "93.184.216.34:443", nil))
	assert.ErrorIs(t, publicOnly("tcp4", "169.254.169.254:80", nil), ErrBlockedAddress)
}
