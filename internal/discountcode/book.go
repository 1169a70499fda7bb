package discountcode

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Lixing-Zhang/foodstand-pos/internal/pricing"
	"github.com/shopspring/decimal"
)

var ErrNoSources = errors.New("no discount code sources provided")

// Book maps printed discount codes to discounts
type Book struct {
	codes   map[string]pricing.Discount
	sources int
	mu      sync.RWMutex
}

// loadResult holds the codes read from a single source
type loadResult struct {
	index int
	codes map[string]pricing.Discount
	err   error
}

// NewBook creates an empty discount code book
func NewBook() *Book {
	return &Book{
		codes: make(map[string]pricing.Discount),
	}
}

// Load reads every source concurrently and replaces the book contents.
// A source is an http(s) URL or a local path; names ending in .gz are gunzipped.
// Codes defined in later sources override earlier ones.
func (b *Book) Load(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return ErrNoSources
	}

	resultChan := make(chan loadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			codes, err := loadSource(ctx, source)
			resultChan <- loadResult{index: index, codes: codes, err: err}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]loadResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	merged := make(map[string]pricing.Discount)
	for i, result := range results {
		if result.err != nil {
			return fmt.Errorf("failed to load source %d (%s): %w", i+1, sources[i], result.err)
		}
		for code, discount := range result.codes {
			merged[code] = discount
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.codes = merged
	b.sources = len(sources)

	return nil
}

func loadSource(ctx context.Context, source string) (map[string]pricing.Discount, error) {
	rc, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var r io.Reader = rc
	if strings.HasSuffix(source, ".gz") {
		gzReader, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	return parseCodes(r)
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		return f, nil
	}

	client := &http.Client{Timeout: 30 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// parseCodes reads "CODE MODE VALUE" lines. Blank lines and # comments are skipped.
func parseCodes(r io.Reader) (map[string]pricing.Discount, error) {
	codes := make(map[string]pricing.Discount)
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected CODE MODE VALUE, got %q", lineNo, line)
		}

		mode := pricing.ParseMode(fields[1])
		if mode == pricing.ModeNone {
			return nil, fmt.Errorf("line %d: unknown discount mode %q", lineNo, fields[1])
		}

		value, err := decimal.NewFromString(fields[2])
		if err != nil || value.IsNegative() {
			return nil, fmt.Errorf("line %d: invalid discount value %q", lineNo, fields[2])
		}

		if mode == pricing.ModePercentage {
			codes[normalize(fields[0])] = pricing.PercentageOff(value)
		} else {
			codes[normalize(fields[0])] = pricing.FixedOff(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return codes, nil
}

// Lookup returns the discount for a code. Codes are case insensitive.
func (b *Book) Lookup(ctx context.Context, code string) (pricing.Discount, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d, ok := b.codes[normalize(code)]
	return d, ok
}

// Stats returns statistics about the loaded codes
func (b *Book) Stats() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	byMode := map[string]int{}
	for _, d := range b.codes {
		byMode[d.Mode().String()]++
	}

	return map[string]interface{}{
		"total_sources": b.sources,
		"total_codes":   len(b.codes),
		"by_mode":       byMode,
	}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
