// Package search filters an in-memory listing snapshot by free text and
// structured filters. It never reorders its input.
package search

import (
	"dormy/internal/domains/listing/model"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

const (
	PriceRangeLow  = "500-2000"
	PriceRangeMid  = "2001-5000"
	PriceRangeHigh = "5001-up"

	currencySymbol = "₱"
)

var (
	PriceRanges = []string{PriceRangeLow, PriceRangeMid, PriceRangeHigh}

	barangayPattern = regexp.MustCompile(`\bbrgy(?:\.|s\b|\b)`)
	digitsPattern   = regexp.MustCompile(`\d+`)
)

type Filters struct {
	Type       string
	Location   string
	PriceRange string
}

// Normalize lower-cases s and spells out barangay abbreviations.
func Normalize(s string) string {
	return barangayPattern.ReplaceAllString(strings.ToLower(s), "barangay")
}

// PriceText renders a price the way it is shown and matched, e.g. "₱1500".
func PriceText(price float64) string {
	return currencySymbol + strconv.FormatFloat(price, 'f', -1, 64)
}

// Bracket returns the price range holding the first run of digits in text,
// or "" when there is none or it falls below every bracket.
func Bracket(text string) string {
	digits := digitsPattern.FindString(text)
	if digits == "" {
		return ""
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return PriceRangeHigh
	}

	if err != nil {
		return ""
	}

	switch {
	case value >= 500 && value <= 2000:
		return PriceRangeLow
	case value >= 2001 && value <= 5000:
		return PriceRangeMid
	case value >= 5001:
		return PriceRangeHigh
	default:
		return ""
	}
}

// Visible reports whether a listing can be shown to tenants at all.
func Visible(l model.Listing) bool {
	return l.Status != model.StatusReserved && l.Status != model.StatusOccupied
}

// Filter keeps the visible listings matching query and every non-empty filter.
func Filter(listings []model.Listing, query string, filters Filters) []model.Listing {
	q := Normalize(strings.TrimSpace(query))
	roomType := strings.ToLower(strings.TrimSpace(filters.Type))
	location := Normalize(strings.TrimSpace(filters.Location))
	priceRange := strings.ToLower(strings.TrimSpace(filters.PriceRange))

	res := make([]model.Listing, 0, len(listings))

	for _, l := range listings {
		if !Visible(l) {
			continue
		}

		f := fieldsOf(l)

		if !f.contains(q) {
			continue
		}

		if roomType != "" && f.roomType != roomType && !strings.Contains(f.roomType, roomType) {
			continue
		}

		if location != "" && !strings.Contains(f.address, location) {
			continue
		}

		if priceRange != "" && Bracket(f.price) != priceRange {
			continue
		}

		res = append(res, l)
	}

	return res
}

type fields struct {
	name        string
	address     string
	roomType    string
	description string
	price       string
}

func fieldsOf(l model.Listing) fields {
	return fields{
		name:        strings.ToLower(l.Name),
		address:     Normalize(l.Address.String()),
		roomType:    strings.ToLower(l.Type),
		description: strings.ToLower(l.Description),
		price:       strings.ToLower(PriceText(l.Price)),
	}
}

func (f fields) contains(q string) bool {
	if q == "" {
		return true
	}

	for _, v := range []string{f.name, f.address, f.roomType, f.description, f.price} {
		if strings.Contains(v, q) {
			return true
		}
	}

	return false
}
