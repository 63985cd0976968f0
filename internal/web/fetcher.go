package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// ErrUnsupportedURL is returned for anything other than an absolute http(s) URL.
var ErrUnsupportedURL = errors.New("only absolute http and https URLs can be fetched")

// ErrBlockedAddress is returned when a URL resolves to a loopback, private or link-local address.
var ErrBlockedAddress = errors.New("refusing to fetch a non-public address")

const userAgent = "Mozilla/5.0 (compatible; ai-dashboard/1.0)"

// Page is the readable content of a fetched web page.
type Page struct {
	URL   string
	Title string
	Text  string
}

// Fetcher downloads web pages and reduces them to visible text.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
	log      *zap.Logger
}

// Option configures a Fetcher.
type Option func(*fetcherOptions)

type fetcherOptions struct {
	allowPrivate bool
}

// AllowPrivateNetworks disables the public-address check. Only for tests and trusted setups.
func AllowPrivateNetworks() Option {
	return func(o *fetcherOptions) { o.allowPrivate = true }
}

// NewFetcher builds a Fetcher. By default it only connects to public
// addresses; the check runs at dial time, so it also covers redirects and DNS.
func NewFetcher(timeout time.Duration, maxBytes int64, log *zap.Logger, opts ...Option) *Fetcher {
	var o fetcherOptions
	for _, opt := range opts {
		opt(&o)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	if log == nil {
		log = zap.NewNop()
	}

	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !o.allowPrivate {
		dialer.Control = publicOnly
		// A proxy would be dialed instead of the target.
		transport.Proxy = nil
	}
	transport.DialContext = dialer.DialContext

	return &Fetcher{
		client:   &http.Client{Timeout: timeout, Transport: transport},
		maxBytes: maxBytes,
		log:      log,
	}
}

func publicOnly(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	ip := net.ParseIP(host)
	if ip == nil || blockedIP(ip) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, host)
	}
	return nil
}

func blockedIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() || ip.IsMulticast()
}

// FetchText fetches rawURL and returns its title and visible text.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (*Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrUnsupportedURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", u.Redacted(), resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	page := &Page{URL: u.String()}
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "text/plain") {
		page.Text = collapseSpace(string(body))
	} else {
		doc, err := html.Parse(strings.NewReader(string(body)))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}
		page.Title, page.Text = extract(doc)
	}

	f.log.Debug("Fetched page",
		zap.String("url", page.URL),
		zap.Int("bytes", len(body)),
		zap.Int("text_chars", len(page.Text)),
	)
	return page, nil
}

func extract(doc *html.Node) (title, text string) {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
			return
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "template", "svg", "iframe":
				return
			case "title":
				if title == "" && n.FirstChild != nil {
					title = collapseSpace(n.FirstChild.Data)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title, collapseSpace(sb.String())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
