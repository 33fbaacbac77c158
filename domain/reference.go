package domain

import "time"

// Unit is a measurement unit (e.g. "Frasco"/"FR"). Name is the natural key;
// Abbreviation carries its own uniqueness constraint in the store.
type Unit struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Category is a product category. Name is the natural key.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
