package domain

import "time"

// RawProduct is one product card exactly as scraped, placeholders included.
// Cleaning and filtering happen downstream in the transformer, never here.
type RawProduct struct {
	Title     string
	Price     string
	Rating    string
	Colors    string
	Size      string
	Gender    string
	ScrapedAt time.Time
}

// Product is a validated, normalized product row ready for the sinks.
type Product struct {
	Title     string
	Price     float64
	Rating    float64
	Colors    int
	Size      string
	Gender    string
	ScrapedAt time.Time
}
