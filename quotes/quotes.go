// Package quotes supplies the short texts rendered onto base images.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxLen bounds the byte length of any quote handed to the renderer.
const MaxLen = 240

// Source produces one single-line quote per call.
type Source interface {
	Quote(ctx context.Context) (string, error)
}

var defaultQuotes = []string{
	"Success is not final, failure is not fatal.",
	"Done is better than perfect.",
	"Make it work, make it right, make it fast.",
	"The best time to start was yesterday. The next best time is now.",
	"Simplicity is the soul of efficiency.",
	"What gets measured gets managed.",
}

// StaticSource picks from a fixed list and never fails.
type StaticSource struct {
	quotes []string
}

func NewStaticSource(qs ...string) *StaticSource {
	if len(qs) == 0 {
		qs = defaultQuotes
	}
	return &StaticSource{quotes: qs}
}

func (s *StaticSource) Quote(ctx context.Context) (string, error) {
	return Clean(s.quotes[rand.Int()%len(s.quotes)]), nil
}

// APISource fetches quotes from a JSON HTTP endpoint responding with
// {"quote": "..."}.
type APISource struct {
	URL    string
	Client *http.Client
}

func (s *APISource) Quote(ctx context.Context) (string, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("can't build quote request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("can't fetch quote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("can't fetch quote: unexpected status %s", resp.Status)
	}
	var body struct {
		Quote string `json:"quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("can't parse quote response: %w", err)
	}
	quote := Clean(body.Quote)
	if quote == "" {
		return "", fmt.Errorf("quote response was empty")
	}
	return quote, nil
}

// Fallback tries Primary and falls back to Backup on error.
type Fallback struct {
	Primary Source
	Backup  Source
}

func (f Fallback) Quote(ctx context.Context) (string, error) {
	quote, err := f.Primary.Quote(ctx)
	if err != nil {
		log.Println("primary quote source failed:", err)
		return f.Backup.Quote(ctx)
	}
	return quote, nil
}

// FromEnv builds the service's quote source: the endpoint in QUOTE_API_URL
// when set, backed by the static rotation, otherwise the static rotation
// alone.
func FromEnv() Source {
	static := NewStaticSource()
	if url := os.Getenv("QUOTE_API_URL"); url != "" {
		return Fallback{Primary: &APISource{URL: url}, Backup: static}
	}
	return static
}

// Clean collapses a quote to one bounded line: the first non-blank line,
// whitespace-trimmed, truncated to MaxLen bytes on a rune boundary.
func Clean(q string) string {
	for _, line := range strings.Split(q, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > MaxLen {
			cut := MaxLen
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			line = strings.TrimSpace(line[:cut])
		}
		return line
	}
	return ""
}
