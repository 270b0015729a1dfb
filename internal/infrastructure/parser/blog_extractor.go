package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"PostCraft/internal/config"
	"PostCraft/internal/domain"
	"PostCraft/internal/ports"
)

const (
	defaultExcerptLength = 200
	untitled             = "Untitled"
)

var (
	titleSelectors = []string{
		"h1",
		"title",
		`[property="og:title"]`,
		`[name="twitter:title"]`,
		".post-title",
		".entry-title",
		".blog-title",
	}

	contentSelectors = []string{
		"article",
		".post-content",
		".entry-content",
		".blog-content",
		".content",
		"main",
		".post-body",
		".entry-body",
	}

	noiseSelector = "script, style, nav, footer, header, aside, ads, .ads, .advertisement"

	blankLinesExpr = regexp.MustCompile(`\n\s*\n`)
	spacesExpr     = regexp.MustCompile(` +`)
	sentenceExpr   = regexp.MustCompile(`[.!?]+`)
)

// FetchError reports a blog page that could not be downloaded.
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("unexpected status %s", e.Status)
	}
	return fmt.Sprintf("request failed: %v", e.Err)
}

// Unwrap exposes both the domain sentinel and the transport cause.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrFetch}
	}
	return []error{domain.ErrFetch, e.Err}
}

// BlogExtractor downloads blog pages and reduces them to title, text and excerpt.
// It owns its HTTP transport; call Close when done.
type BlogExtractor struct {
	client        *http.Client
	userAgent     string
	excerptLength int
	logger        *slog.Logger
	closed        atomic.Bool
}

var _ ports.ContentExtractor = (*BlogExtractor)(nil)

// NewBlogExtractor builds an extractor with its own connection pool.
func NewBlogExtractor(cfg config.ExtractorConfig, log *slog.Logger) *BlogExtractor {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	excerptLength := cfg.ExcerptLength
	if excerptLength <= 0 {
		excerptLength = defaultExcerptLength
	}

	return &BlogExtractor{
		client:        &http.Client{Timeout: cfg.Timeout, Transport: transport},
		userAgent:     cfg.UserAgent,
		excerptLength: excerptLength,
		logger:        log,
	}
}

// Extract fetches url and returns its cleaned content.
func (e *BlogExtractor) Extract(ctx context.Context, url string) (domain.BlogContent, error) {
	if e.closed.Load() {
		return domain.BlogContent{}, fmt.Errorf("extract content from %s: extractor is closed", url)
	}

	doc, err := e.fetchDocument(ctx, url)
	if err != nil {
		return domain.BlogContent{}, fmt.Errorf("extract content from %s: %w", url, err)
	}

	title := extractTitle(doc)
	content := extractContent(doc)
	blog := domain.BlogContent{
		URL:     url,
		Title:   title,
		Content: content,
		Excerpt: GenerateExcerpt(content, e.excerptLength),
	}

	e.debug("blog extracted", "url", url, "title", title, "content_chars", utf8.RuneCountInString(content))
	return blog, nil
}

// Close releases pooled connections. It is safe to call more than once.
func (e *BlogExtractor) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	e.client.CloseIdleConnections()
	return nil
}

func (e *BlogExtractor) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		body = resp.Body
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: fmt.Errorf("read document: %w", err)}
	}

	return doc, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}

		title := strings.Join(strings.Fields(node.Text()), " ")
		if title == "" {
			content, _ := node.Attr("content")
			title = strings.TrimSpace(content)
		}
		if title != "" {
			return title
		}
	}
	return untitled
}

func extractContent(doc *goquery.Document) string {
	doc.Find(noiseSelector).Remove()

	var container *goquery.Selection
	for _, selector := range contentSelectors {
		if found := doc.Find(selector).First(); found.Length() > 0 {
			container = found
			break
		}
	}
	if container == nil {
		if body := doc.Find("body").First(); body.Length() > 0 {
			container = body
		} else {
			container = doc.Selection
		}
	}

	return cleanText(blockText(container))
}

// blockText joins every non-blank text node under sel, one per line.
func blockText(sel *goquery.Selection) string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				lines = append(lines, text)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return strings.Join(lines, "\n")
}

func cleanText(text string) string {
	text = blankLinesExpr.ReplaceAllString(text, "\n\n")
	text = spacesExpr.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// GenerateExcerpt returns whole leading sentences of content that fit in maxLength
// runes, or a hard truncation with "..." when not even the first sentence fits.
// Text without sentence punctuation is never split into sentences.
func GenerateExcerpt(content string, maxLength int) string {
	if content == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = defaultExcerptLength
	}

	normalized := strings.Join(strings.Fields(content), " ")
	if !sentenceExpr.MatchString(normalized) {
		return truncate(normalized, maxLength)
	}

	var (
		b      strings.Builder
		length int
	)
	for _, sentence := range sentenceExpr.Split(normalized, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		n := utf8.RuneCountInString(sentence)
		if length+n > maxLength {
			break
		}
		b.WriteString(sentence)
		b.WriteString(". ")
		length += n + 2
	}

	excerpt := b.String()
	if excerpt == "" {
		return truncate(normalized, maxLength)
	}

	return strings.TrimSpace(excerpt)
}

// truncate cuts text to maxLength runes, marking the cut with "...".
func truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return strings.TrimSpace(text)
	}
	return strings.TrimRightFunc(string(runes[:maxLength]), unicode.IsSpace) + "..."
}

func (e *BlogExtractor) debug(msg string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
