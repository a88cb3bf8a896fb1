package domain

import "fmt"

// PosType represents the kind of point of sale
type PosType string

const (
	PosTypeCafe           PosType = "CAFE"
	PosTypeVendingMachine PosType = "VENDING_MACHINE"
	PosTypeBakery         PosType = "BAKERY" // e.g., bakeries in grocery stores selling coffee
	PosTypeCafeteria      PosType = "CAFETERIA"
	PosTypeOther          PosType = "OTHER"
)

// ParsePosType parses a POS type from its string form
func ParsePosType(s string) (PosType, error) {
	switch PosType(s) {
	case PosTypeCafe, PosTypeVendingMachine, PosTypeBakery, PosTypeCafeteria, PosTypeOther:
		return PosType(s), nil
	}
	return "", NewValidation(fmt.Sprintf("invalid POS type '%s'", s))
}

// CampusType represents a campus location
type CampusType string

const (
	CampusAltstadt CampusType = "ALTSTADT"
	CampusBergheim CampusType = "BERGHEIM"
	CampusINF      CampusType = "INF"
	// This list is incomplete, e.g., the Mannheim medical faculty is missing
)

// ParseCampusType parses a campus location from its string form
func ParseCampusType(s string) (CampusType, error) {
	switch CampusType(s) {
	case CampusAltstadt, CampusBergheim, CampusINF:
		return CampusType(s), nil
	}
	return "", NewValidation(fmt.Sprintf("invalid campus '%s'", s))
}

// OsmAmenity represents an OpenStreetMap amenity value relevant for a POS.
// See https://wiki.openstreetmap.org/wiki/Key:amenity
type OsmAmenity string

const (
	AmenityBar            OsmAmenity = "bar"
	AmenityBiergarten     OsmAmenity = "biergarten"
	AmenityCafe           OsmAmenity = "cafe"
	AmenityFastFood       OsmAmenity = "fast_food"
	AmenityFoodCourt      OsmAmenity = "food_court"
	AmenityIceCream       OsmAmenity = "ice_cream"
	AmenityPub            OsmAmenity = "pub"
	AmenityRestaurant     OsmAmenity = "restaurant"
	AmenityVendingMachine OsmAmenity = "vending_machine"
)

// ParseOsmAmenity parses an OSM amenity tag value. The second return value
// reports whether the value is one of the supported amenities.
func ParseOsmAmenity(osmValue string) (OsmAmenity, bool) {
	switch OsmAmenity(osmValue) {
	case AmenityBar, AmenityBiergarten, AmenityCafe, AmenityFastFood, AmenityFoodCourt,
		AmenityIceCream, AmenityPub, AmenityRestaurant, AmenityVendingMachine:
		return OsmAmenity(osmValue), true
	}
	return "", false
}

// PosType maps the amenity to the POS type used in the domain.
func (a OsmAmenity) PosType() PosType {
	switch a {
	case AmenityCafe, AmenityIceCream:
		return PosTypeCafe
	case AmenityVendingMachine:
		return PosTypeVendingMachine
	case AmenityFoodCourt:
		return PosTypeCafeteria
	default: // bar, biergarten, pub, restaurant, fast_food
		return PosTypeOther
	}
}
