package repositories

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"

// PageFetcher retrieves one listing page as HTML.
type PageFetcher interface {
	Fetch(url string) (string, error)
}

type RestyPageFetcher struct {
	client   *resty.Client
	attempts int
	delay    time.Duration
}

func NewPageFetcher() *RestyPageFetcher {
	client := resty.New().
		SetTimeout(domain.FetchTimeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept-Language", "en-US,en;q=0.9").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")

	return &RestyPageFetcher{
		client:   client,
		attempts: domain.RetryAttempts,
		delay:    domain.RetryDelay,
	}
}

// Fetch retries transient failures a fixed number of times with a fixed
// delay. A non-2xx status counts as a failed attempt.
func (pf *RestyPageFetcher) Fetch(url string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= pf.attempts; attempt++ {
		log.Printf("Fetching %s (attempt %d/%d)", url, attempt, pf.attempts)

		resp, err := pf.client.R().Get(url)
		if err == nil && resp.IsSuccess() {
			return resp.String(), nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode())
		}
		log.Printf("Error fetching %s: %v", url, lastErr)

		if attempt < pf.attempts {
			log.Printf("Retrying in %v...", pf.delay)
			time.Sleep(pf.delay)
		}
	}

	return "", fmt.Errorf("failed to fetch %s after %d attempts: %w", url, pf.attempts, lastErr)
}
