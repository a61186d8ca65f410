package ordering

import (
	"fmt"
	"strings"
	"time"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// ServiceArea is a named delivery zone with a flat fee and its matching rules
type ServiceArea struct {
	Key            string
	Label          string
	FeeCents       int64
	CityKeywords   []string
	PostalPrefixes []string
}

// ServiceAreas is the ordered list of supported delivery zones.
// Declaration order decides ties: the first matching area wins.
var ServiceAreas = []ServiceArea{
	{
		Key:            "st_albert",
		Label:          "St. Albert",
		FeeCents:       2000,
		CityKeywords:   []string{"st albert", "st. albert", "saint albert"},
		PostalPrefixes: []string{"T8N", "T8T"},
	},
	{
		Key:            "sherwood_park",
		Label:          "Sherwood Park",
		FeeCents:       2500,
		CityKeywords:   []string{"sherwood park", "sherwood"},
		PostalPrefixes: []string{"T8A", "T8B", "T8H"},
	},
	{
		Key:            "spruce_grove",
		Label:          "Spruce Grove",
		FeeCents:       3500,
		CityKeywords:   []string{"spruce grove"},
		PostalPrefixes: []string{"T7X"},
	},
	{
		Key:            "leduc",
		Label:          "Leduc",
		FeeCents:       3500,
		CityKeywords:   []string{"leduc"},
		PostalPrefixes: []string{"T9E"},
	},
}

// DeliveryQuote is the transient result of resolving an address to a zone
type DeliveryQuote struct {
	ServiceArea string
	FeeCents    int64
	ETAText     string
}

// ZoneError indicates the address is outside every supported delivery area
type ZoneError struct {
	*shared.DomainError
}

// NewZoneError creates a ZoneError listing every supported area and its fee
func NewZoneError() *ZoneError {
	return &ZoneError{
		DomainError: shared.NewDomainError(
			"OUTSIDE_SERVICE_AREA",
			fmt.Sprintf("Delivery is available to: %s. Please adjust your city/postal code.", DescribeSupportedAreas()),
		),
	}
}

// DescribeSupportedAreas renders the supported zones as "Label ($fee), ..."
func DescribeSupportedAreas() string {
	parts := make([]string, 0, len(ServiceAreas))
	for _, area := range ServiceAreas {
		parts = append(parts, fmt.Sprintf("%s ($%d)", area.Label, area.FeeCents/100))
	}
	return strings.Join(parts, ", ")
}

// normalizeText lowercases, turns "." and "," into spaces and collapses whitespace
func normalizeText(value string) string {
	text := strings.ToLower(value)
	text = strings.ReplaceAll(text, ".", " ")
	text = strings.ReplaceAll(text, ",", " ")
	return strings.Join(strings.Fields(text), " ")
}

// normalizePostalCode strips spaces and uppercases
func normalizePostalCode(value string) string {
	return strings.ToUpper(strings.ReplaceAll(value, " ", ""))
}

func matchesAny(text string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// MatchesAddress reports whether the area covers the given address.
// A normalized city or street line containing any keyword matches, as
// does a normalized postal code starting with any declared prefix.
func (a ServiceArea) MatchesAddress(city, postalCode, addressLine1 string) bool {
	normalizedCity := normalizeText(city)
	normalizedAddress := normalizeText(addressLine1)
	normalizedPostal := normalizePostalCode(postalCode)

	if matchesAny(normalizedCity, a.CityKeywords) {
		return true
	}
	if matchesAny(normalizedAddress, a.CityKeywords) {
		return true
	}
	if normalizedPostal != "" {
		for _, prefix := range a.PostalPrefixes {
			if strings.HasPrefix(normalizedPostal, normalizePostalCode(prefix)) {
				return true
			}
		}
	}
	return false
}

// DetermineDeliveryETA renders the delivery window relative to now.
// The noon cutoff uses the clock of the passed time, so callers must
// pass local time, not UTC.
func DetermineDeliveryETA(now time.Time) string {
	if now.Hour() < 12 {
		return "Arrives today between 4–5 PM"
	}
	return "Arrives by 1 PM tomorrow"
}

// EstimateDeliveryDate returns the expected arrival date for an order
// placed at now: same day before the noon cutoff, next day after it.
func EstimateDeliveryDate(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Hour() < 12 {
		return day
	}
	return day.AddDate(0, 0, 1)
}

// ResolveDeliveryQuote maps an address to a delivery quote or a ZoneError.
// Areas are tried in declaration order and the first match wins.
func ResolveDeliveryQuote(addressLine1, city, postalCode string, now time.Time) (*DeliveryQuote, error) {
	for _, area := range ServiceAreas {
		if area.MatchesAddress(city, postalCode, addressLine1) {
			return &DeliveryQuote{
				ServiceArea: area.Label,
				FeeCents:    area.FeeCents,
				ETAText:     DetermineDeliveryETA(now),
			}, nil
		}
	}
	return nil, NewZoneError()
}
