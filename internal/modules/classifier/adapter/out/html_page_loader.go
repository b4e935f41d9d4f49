package out

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"focuslock/internal/modules/classifier/domain"
	classifierout "focuslock/internal/modules/classifier/port/out"
)

const (
	defaultFetchTimeout = 20 * time.Second
	maxBodyBytes        = 5 * 1024 * 1024
	// Enough rendered text to cover the excerpt after whitespace collapsing.
	maxTextBytes = domain.ExcerptLength * 8
)

// HTMLPageLoader reads a page from an http(s) URL or a local HTML file and
// extracts its title and rendered text.
type HTMLPageLoader struct {
	client *http.Client
}

var _ classifierout.PageLoader = (*HTMLPageLoader)(nil)

func NewHTMLPageLoader(client *http.Client) *HTMLPageLoader {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &HTMLPageLoader{client: client}
}

func (l *HTMLPageLoader) Load(ctx context.Context, target string) (domain.Page, error) {
	lower := strings.ToLower(target)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return l.fetch(ctx, target)
	}
	return l.readFile(target)
}

func (l *HTMLPageLoader) fetch(ctx context.Context, target string) (domain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("build page request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return domain.Page{}, fmt.Errorf("fetch page: unexpected status %s", resp.Status)
	}
	pageURL := target
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL.String()
	}
	return Extract(io.LimitReader(resp.Body, maxBodyBytes), pageURL)
}

func (l *HTMLPageLoader) readFile(path string) (domain.Page, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.Page{}, fmt.Errorf("resolve page path: %w", err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return domain.Page{}, fmt.Errorf("open page: %w", err)
	}
	defer file.Close()
	return Extract(io.LimitReader(file, maxBodyBytes), "file://"+filepath.ToSlash(abs))
}

// Extract parses an HTML document into its title and the text a browser would
// render, with runs of whitespace collapsed to single spaces.
func Extract(r io.Reader, pageURL string) (domain.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return domain.Page{}, fmt.Errorf("parse html: %w", err)
	}

	var title string
	var text strings.Builder
	var walk func(*html.Node, bool)
	walk = func(n *html.Node, inBody bool) {
		if text.Len() >= maxTextBytes && title != "" {
			return
		}
		switch n.Type {
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			case atom.Title:
				if title == "" {
					title = collapse(textOf(n))
				}
				return
			case atom.Body:
				inBody = true
			}
		case html.TextNode:
			if inBody && text.Len() < maxTextBytes {
				if chunk := collapse(n.Data); chunk != "" {
					if text.Len() > 0 {
						text.WriteByte(' ')
					}
					text.WriteString(chunk)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inBody)
		}
	}
	walk(doc, false)

	return domain.Page{Title: title, Text: text.String(), URL: pageURL}, nil
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
