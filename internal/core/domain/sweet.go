package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Price is a currency amount in minor units (e.g. paise). Wire form is a
// two-decimal string such as "300.00"; keeping integers internally avoids
// float rounding on money.
type Price int64

// ParsePrice converts a decimal string ("300", "300.5", "300.00") into a
// Price. Only digits and a single point are accepted: signs, stray
// characters and more than two decimal places are rejected.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidSweet
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	// 15 whole digits keeps units*100 well inside int64.
	if whole == "" || len(whole) > 15 || len(frac) > 2 {
		return 0, ErrInvalidSweet
	}
	if !allDigits(whole) || !allDigits(frac) {
		return 0, ErrInvalidSweet
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidSweet
	}

	minor := int64(0)
	if frac != "" {
		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrInvalidSweet
		}
		if len(frac) == 1 {
			minor *= 10
		}
	}

	return Price(units*100 + minor), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the canonical two-decimal wire form.
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", int64(p)/100, int64(p)%100)
}

// MarshalJSON renders the wire form, so a Price never leaks as raw minor
// units even when a domain value is serialized directly.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts both quoted ("300.00") and bare (300.5) decimals.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Sweet is a catalog item.
type Sweet struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Category    string    `json:"category" bson:"category"`
	Price       Price     `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Unit        string    `json:"unit" bson:"unit"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Validate enforces the field constraints that hold for every stored sweet.
func (s *Sweet) Validate() error {
	if s.Name == "" || s.Category == "" || s.Unit == "" {
		return ErrInvalidSweet
	}
	if s.Price < 0 || s.Stock < 0 {
		return ErrInvalidSweet
	}
	return nil
}
