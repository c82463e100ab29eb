// Package linkcheck probes the outbound listing URLs of a catalog.
// Scraped feeds go stale fast; this finds listings whose marketplace
// pages have disappeared so the user can re-scrape them.
package linkcheck

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/nikbrunner/pricedex/internal/model"
)

// Status represents the health status of a listing URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Dead                      // 404 or 410 Gone
	Unreachable               // timeout, DNS failure, connection refused, etc.
)

// Result holds the check result for a single product.
type Result struct {
	Product    *model.Product
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // Error message for unreachable URLs
}

// ProgressFunc is called after each URL is checked.
// completed is the number of URLs checked so far, total is the total count.
type ProgressFunc func(completed, total int)

// CheckURLs checks all product listing URLs concurrently and returns results.
// skipDomains lists marketplaces that block automated probes; their 404s are
// reported as unreachable instead of dead.
func CheckURLs(products []model.Product, concurrency int, timeout time.Duration, skipDomains []string, onProgress ProgressFunc) []Result {
	if len(products) == 0 {
		return nil
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses, etc.)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	skipMap := make(map[string]bool)
	for _, domain := range skipDomains {
		skipMap[strings.ToLower(domain)] = true
	}

	results := make([]Result, len(products))
	jobs := make(chan int, len(products))
	var wg sync.WaitGroup

	// Progress tracking
	var progressMu sync.Mutex
	completed := 0

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			// Follow redirects but limit to 10
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}

	// Start workers
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkURL(client, &products[idx], skipMap)

				if onProgress != nil {
					progressMu.Lock()
					completed++
					onProgress(completed, len(products))
					progressMu.Unlock()
				}
			}
		}()
	}

	// Send jobs
	for i := range products {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// checkURL checks a single listing URL and returns the result.
func checkURL(client *http.Client, product *model.Product, skipMap map[string]bool) Result {
	result := Result{
		Product: product,
	}

	// Try HEAD first (faster, less bandwidth)
	resp, err := client.Head(product.URL)
	if err != nil {
		// HEAD failed, try GET as fallback (some servers don't support HEAD)
		resp, err = client.Get(product.URL)
		if err != nil {
			result.Status = Unreachable
			result.Error = normalizeError(err.Error())
			return result
		}
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		result.Status = Healthy
	case resp.StatusCode == 404 || resp.StatusCode == 410:
		// Marketplaces on the skip list 404 bot traffic, so a 404
		// there proves nothing about the listing
		if isSkippedDomain(product.URL, skipMap) {
			result.Status = Unreachable
			result.Error = "Blocked or bot-gated marketplace"
		} else {
			result.Status = Dead
		}
	default:
		// Other errors (500, 403, etc.) - treat as unreachable
		// Could be temporary server issues or auth-required pages
		result.Status = Unreachable
		result.Error = http.StatusText(resp.StatusCode)
	}

	return result
}

// isSkippedDomain checks if the URL's domain is in the skip list.
func isSkippedDomain(rawURL string, skipMap map[string]bool) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Host)
	// Check exact match and parent domain (e.g., "smile.amazon.com" matches "amazon.com")
	if skipMap[host] {
		return true
	}
	for domain := range skipMap {
		if strings.HasSuffix(host, "."+domain) || host == domain {
			return true
		}
	}
	return false
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "network is unreachable"):
		return "Network unreachable"
	case strings.Contains(lower, "tls:"):
		return "TLS error"
	default:
		return errStr
	}
}
