package models

import "github.com/shopspring/decimal"

// Product is built from scraped HTML, never persisted.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	SKU         *string         `json:"sku,omitempty"`
	Brand       string          `json:"brand,omitempty"`
}

type Category struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
}
