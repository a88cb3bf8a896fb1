package domain

import (
	"fmt"
	"regexp"
	"time"
)

// German postal codes, see
// https://github.com/zauberware/postal-codes-json-xml-csv/blob/master/data/DE.zip
const (
	MinPostalCode = 1067
	MaxPostalCode = 99998
)

// Standard German house numbering, e.g. "21", "21a", "21 a", "21-a".
// See https://de.wikipedia.org/wiki/Hausnummer
var houseNumberPattern = regexp.MustCompile(`^\d+[ \-]?[a-zA-Z]?$`)

// Pos represents a point of sale where coffee can be bought.
// Values are immutable: updates produce a new value, never an in-place edit.
// ID, CreatedAt and UpdatedAt are owned by the persistence boundary;
// ID == 0 means the POS has not been persisted yet.
type Pos struct {
	ID          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string // unique across all POS
	Description string
	Type        PosType
	Campus      CampusType
	Street      string
	HouseNumber string
	PostalCode  int
	City        string
}

// NewPos constructs a POS value, validating house number and postal code.
// A Pos can never exist in an invalid state: invalid values fail construction.
func NewPos(name, description string, posType PosType, campus CampusType,
	street, houseNumber string, postalCode int, city string) (Pos, error) {
	if err := ValidateHouseNumber(houseNumber); err != nil {
		return Pos{}, err
	}
	if err := ValidatePostalCode(postalCode); err != nil {
		return Pos{}, err
	}
	return Pos{
		Name:        name,
		Description: description,
		Type:        posType,
		Campus:      campus,
		Street:      street,
		HouseNumber: houseNumber,
		PostalCode:  postalCode,
		City:        city,
	}, nil
}

// ValidateHouseNumber checks the house number against standard German
// house numbering conventions.
func ValidateHouseNumber(houseNumber string) error {
	if !houseNumberPattern.MatchString(houseNumber) {
		return NewValidation(fmt.Sprintf("invalid house number '%s'", houseNumber))
	}
	return nil
}

// ValidatePostalCode checks that the postal code lies within the range of
// German postal codes.
func ValidatePostalCode(postalCode int) error {
	if postalCode < MinPostalCode || postalCode > MaxPostalCode {
		return NewValidation(fmt.Sprintf("invalid postal code '%d'", postalCode))
	}
	return nil
}

// User represents a registered user.
// ID, CreatedAt and UpdatedAt are owned by the persistence boundary.
type User struct {
	ID           uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LoginName    string // unique, word characters only
	EmailAddress string // unique
	FirstName    string
	LastName     string
}

// Review represents a user-submitted review for a POS.
// Reviews are approved once they receive a configurable number of approvals.
// ApprovalCount and Approved are managed by the domain module, never by callers.
type Review struct {
	ID            uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PosID         uint
	AuthorID      uint
	Review        string
	ApprovalCount int
	Approved      bool
}

// NewReview constructs an unapproved review with a zero approval count.
func NewReview(posID, authorID uint, text string) Review {
	return Review{
		PosID:    posID,
		AuthorID: authorID,
		Review:   text,
	}
}

// WithApproval returns a copy of the review with the given approval count and
// the approved flag recomputed against the quorum. The flag is never set
// independently of the counter.
func (r Review) WithApproval(count, minApprovalCount int) Review {
	r.ApprovalCount = count
	r.Approved = count >= minApprovalCount
	return r
}

// OsmNode represents an OpenStreetMap node with the attributes relevant for a
// POS. It is transient: it exists only during an import call and is never
// persisted as such.
type OsmNode struct {
	NodeID      int64
	City        string
	HouseNumber string
	Postcode    string
	Street      string
	Amenity     OsmAmenity
	Name        string
	Description string
}
