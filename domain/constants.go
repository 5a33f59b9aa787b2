package domain

import "time"

const (
	BaseURL    = "https://fashion-studio.dicoding.dev/"
	MaxPages   = 50
	TargetData = 1000

	RetryAttempts = 3
	RetryDelay    = 2 * time.Second
	PageDelay     = 1500 * time.Millisecond
	FetchTimeout  = 15 * time.Second

	// Placeholder values emitted by the catalog site
	UnknownTitle     = "Unknown Product"
	PriceUnavailable = "Price Unavailable"
	InvalidRating    = "Invalid Rating"
	NotRated         = "Not Rated"

	SizePrefix   = "Size: "
	GenderPrefix = "Gender: "

	// USD to IDR conversion applied to cleaned prices
	ExchangeRate = 16000
)
