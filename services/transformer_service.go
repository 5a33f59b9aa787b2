package services

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/wahyuabrory/fashion-data-ingestion/domain"
)

var (
	priceRe  = regexp.MustCompile(`[\d.,]+`)
	ratingRe = regexp.MustCompile(`[\d.]+`)
	colorsRe = regexp.MustCompile(`\d+`)
)

type TransformerService struct {
	limit int
}

func NewTransformerService() *TransformerService {
	return &TransformerService{limit: domain.TargetData}
}

// Transform maps every valid raw product to exactly one cleaned product,
// preserving input order. Invalid rows are dropped whole, never partially
// emitted, and drops never surface as errors.
func (s *TransformerService) Transform(raw []domain.RawProduct) []domain.Product {
	products := make([]domain.Product, 0, len(raw))
	dropped := 0

	for _, item := range raw {
		product, ok := clean(item)
		if !ok {
			dropped++
			continue
		}
		products = append(products, product)
		if s.limit > 0 && len(products) >= s.limit {
			break
		}
	}

	log.Printf("Transformation complete: %d valid products, %d dropped", len(products), dropped)
	return products
}

func clean(item domain.RawProduct) (domain.Product, bool) {
	title := strings.TrimSpace(item.Title)
	if title == "" || strings.Contains(title, domain.UnknownTitle) {
		return domain.Product{}, false
	}

	price, ok := cleanPrice(item.Price)
	if !ok {
		return domain.Product{}, false
	}
	rating, ok := cleanRating(item.Rating)
	if !ok {
		return domain.Product{}, false
	}
	colors, ok := cleanColors(item.Colors)
	if !ok {
		return domain.Product{}, false
	}
	size, ok := stripLabel(item.Size, domain.SizePrefix)
	if !ok {
		return domain.Product{}, false
	}
	gender, ok := stripLabel(item.Gender, domain.GenderPrefix)
	if !ok {
		return domain.Product{}, false
	}

	return domain.Product{
		Title:     title,
		Price:     price,
		Rating:    rating,
		Colors:    colors,
		Size:      size,
		Gender:    gender,
		ScrapedAt: item.ScrapedAt,
	}, true
}

// cleanPrice parses the USD amount out of the price text and converts it to
// IDR with the fixed exchange rate.
func cleanPrice(text string) (float64, bool) {
	if text == "" || text == domain.PriceUnavailable {
		return 0, false
	}
	match := priceRe.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value * domain.ExchangeRate, true
}

func cleanRating(text string) (float64, bool) {
	if text == "" || text == domain.NotRated || strings.Contains(text, domain.InvalidRating) {
		return 0, false
	}
	match := ratingRe.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// cleanColors extracts the leading count from text like "3 Colors".
func cleanColors(text string) (int, bool) {
	match := colorsRe.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return value, true
}

// stripLabel removes the fixed label prefix; a row with nothing left after
// stripping is invalid.
func stripLabel(text, prefix string) (string, bool) {
	value := strings.TrimSpace(strings.ReplaceAll(text, prefix, ""))
	if value == "" {
		return "", false
	}
	return value, true
}
