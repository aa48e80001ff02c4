// Package entities contains core domain data structures.
package entities

import "strings"

// PlaceType represents the kind of logistics site.
type PlaceType string

// Supported place types.
const (
	PlaceTypeWarehouse PlaceType = "WAREHOUSE"
	PlaceTypeFactory   PlaceType = "FACTORY"
	PlaceTypeStore     PlaceType = "STORE"
	PlaceTypePort      PlaceType = "PORT"
)

// IsValid reports whether t is one of the supported place types.
func (t PlaceType) IsValid() bool {
	switch t {
	case PlaceTypeWarehouse, PlaceTypeFactory, PlaceTypeStore, PlaceTypePort:
		return true
	}
	return false
}

// MapProvider is the preferred map application for a place.
type MapProvider string

const (
	MapProviderNaver  MapProvider = "NAVER"
	MapProviderGoogle MapProvider = "GOOGLE"
)

// Place is a pickup or dropoff site. Places are append-only.
type Place struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Address          string      `json:"address"`
	Type             PlaceType   `json:"place_type"`
	Lat              *float64    `json:"lat,omitempty"`
	Lng              *float64    `json:"lng,omitempty"`
	FormattedAddress string      `json:"formatted_address,omitempty"`
	MapProviderPref  MapProvider `json:"map_provider_pref,omitempty"`
}

// Matches reports whether the place name or address contains term,
// ignoring case. An empty term matches every place.
func (p *Place) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Address), term)
}
