package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

// Consumer-side interface
type PageFetcher interface {
	Fetch(url string) (string, error)
}

type ExtractorService struct {
	fetcher   PageFetcher
	baseURL   string
	maxPages  int
	target    int
	pageDelay time.Duration
}

type ExtractorOption func(*ExtractorService)

func WithPageFetcher(f PageFetcher) ExtractorOption {
	return func(s *ExtractorService) { s.fetcher = f }
}

func WithBaseURL(url string) ExtractorOption {
	return func(s *ExtractorService) { s.baseURL = url }
}

func WithMaxPages(n int) ExtractorOption {
	return func(s *ExtractorService) { s.maxPages = n }
}

func WithTarget(n int) ExtractorOption {
	return func(s *ExtractorService) { s.target = n }
}

func WithPageDelay(d time.Duration) ExtractorOption {
	return func(s *ExtractorService) { s.pageDelay = d }
}

func NewExtractorService(opts ...ExtractorOption) *ExtractorService {
	s := &ExtractorService{
		baseURL:   domain.BaseURL,
		maxPages:  domain.MaxPages,
		target:    domain.TargetData,
		pageDelay: domain.PageDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract walks the catalog pages in order and collects every product card.
// Pages that keep failing after retries are skipped; the run only fails when
// no page yielded any product at all.
func (s *ExtractorService) Extract() ([]domain.RawProduct, error) {
	var all []domain.RawProduct

	log.Printf("Starting extraction: target %d products from up to %d pages", s.target, s.maxPages)

	for page := 1; page <= s.maxPages; page++ {
		url := s.pageURL(page)
		log.Printf("Scraping page %d/%d: %s", page, s.maxPages, url)

		products, err := s.scrapePage(url)
		if err != nil {
			log.Printf("Skipping page %d: %v", page, err)
			continue
		}

		all = append(all, products...)
		log.Printf("Progress: %d/%d products collected", len(all), s.target)

		if len(all) >= s.target {
			log.Printf("Reached target of %d products, stopping extraction", s.target)
			break
		}

		// An empty page past the first may be the end of the catalog; probe
		// the next page before giving up.
		if len(products) == 0 && page > 1 {
			probe, probeErr := s.scrapePage(s.pageURL(page + 1))
			if probeErr != nil || len(probe) == 0 {
				log.Printf("Confirmed end of product listings at page %d, stopping extraction", page)
				break
			}
		}

		if s.pageDelay > 0 {
			time.Sleep(s.pageDelay)
		}
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("extraction produced no products from %s", s.baseURL)
	}

	log.Printf("Extraction complete: %d products", len(all))
	return all, nil
}

// pageURL builds the catalog's pagination scheme: the first page is the base
// URL, later pages append "page{n}".
func (s *ExtractorService) pageURL(page int) string {
	if page == 1 {
		return s.baseURL
	}
	return fmt.Sprintf("%spage%d", s.baseURL, page)
}

func (s *ExtractorService) scrapePage(url string) ([]domain.RawProduct, error) {
	html, err := s.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML from %s: %w", url, err)
	}

	scrapedAt := time.Now()
	var products []domain.RawProduct

	doc.Find("div.collection-card").Each(func(_ int, card *goquery.Selection) {
		details := card.Find("div.product-details")
		if details.Length() == 0 {
			return
		}
		products = append(products, parseCard(details, scrapedAt))
	})

	if len(products) == 0 {
		log.Printf("No collection cards found on %s", url)
	} else {
		log.Printf("Extracted %d products from %s", len(products), url)
	}
	return products, nil
}

// parseCard reads one product-details block, keeping the site's placeholder
// text for anything missing. Filtering happens in the transformer.
func parseCard(details *goquery.Selection, scrapedAt time.Time) domain.RawProduct {
	raw := domain.RawProduct{
		Title:     domain.UnknownTitle,
		Price:     domain.PriceUnavailable,
		Rating:    domain.InvalidRating,
		Colors:    "0 Colors",
		Size:      domain.SizePrefix + "N/A",
		Gender:    domain.GenderPrefix + "N/A",
		ScrapedAt: scrapedAt,
	}

	if title := strings.TrimSpace(details.Find("h3.product-title").First().Text()); title != "" {
		raw.Title = title
	}

	price := details.Find("span.price").First()
	if price.Length() == 0 {
		price = details.Find("p.price").First()
	}
	if text := strings.TrimSpace(price.Text()); text != "" {
		raw.Price = text
	}

	details.Find("p[style]").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		switch {
		case strings.Contains(text, "Rating:"):
			raw.Rating = strings.TrimSpace(strings.ReplaceAll(text, "Rating:", ""))
		case strings.Contains(text, "Colors"):
			raw.Colors = text
		case strings.Contains(text, "Size:"):
			raw.Size = text
		case strings.Contains(text, "Gender:"):
			raw.Gender = text
		}
	})

	return raw
}
