package models

import (
	"time"
)

// FashionProduct is a cleaned product row as stored in Postgres. The table
// name comes from the runtime config, so there is no TableName override.
type FashionProduct struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:text;not null"`
	Price     float64   `gorm:"not null"`
	Rating    float64   `gorm:"not null"`
	Colors    int       `gorm:"not null"`
	Size      string    `gorm:"type:text"`
	Gender    string    `gorm:"type:text"`
	ScrapedAt time.Time `gorm:"type:timestamp with time zone"`
}
