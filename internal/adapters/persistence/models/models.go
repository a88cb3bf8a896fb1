package models

import (
	"time"

	"campuscoffee/internal/core/domain"

	"gorm.io/gorm"
)

// Table names. The constraint registry keys its schema lookups on these, so
// repositories and models share a single declaration.
const (
	PosTableName    = "pos"
	UserTableName   = "users"
	ReviewTableName = "reviews"
)

// Pos represents the pos table
type Pos struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex:uni_pos_name;size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Type        string    `gorm:"size:30;not null" json:"type"`
	Campus      string    `gorm:"size:30;not null" json:"campus"`
	Street      string    `gorm:"size:255;not null" json:"street"`
	HouseNumber string    `gorm:"size:255;not null" json:"house_number"`
	PostalCode  int       `gorm:"not null" json:"postal_code"`
	City        string    `gorm:"size:255;not null" json:"city"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Pos) TableName() string {
	return PosTableName
}

// ToDomain converts the model to its domain value
func (m *Pos) ToDomain() domain.Pos {
	return domain.Pos{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Name:        m.Name,
		Description: m.Description,
		Type:        domain.PosType(m.Type),
		Campus:      domain.CampusType(m.Campus),
		Street:      m.Street,
		HouseNumber: m.HouseNumber,
		PostalCode:  m.PostalCode,
		City:        m.City,
	}
}

// PosFromDomain builds a fresh model from a domain value. ID and timestamps
// are left to the storage layer.
func PosFromDomain(p domain.Pos) *Pos {
	m := &Pos{}
	m.ApplyDomain(p)
	return m
}

// ApplyDomain copies the caller-supplied fields onto the model while leaving
// ID, CreatedAt and UpdatedAt untouched; those are storage-owned.
func (m *Pos) ApplyDomain(p domain.Pos) {
	m.Name = p.Name
	m.Description = p.Description
	m.Type = string(p.Type)
	m.Campus = string(p.Campus)
	m.Street = p.Street
	m.HouseNumber = p.HouseNumber
	m.PostalCode = p.PostalCode
	m.City = p.City
}

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	LoginName    string    `gorm:"uniqueIndex:uni_users_login_name;size:255;not null" json:"login_name"`
	EmailAddress string    `gorm:"uniqueIndex:uni_users_email_address;size:255;not null" json:"email_address"`
	FirstName    string    `gorm:"size:255;not null" json:"first_name"`
	LastName     string    `gorm:"size:255;not null" json:"last_name"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return UserTableName
}

// ToDomain converts the model to its domain value
func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		LoginName:    m.LoginName,
		EmailAddress: m.EmailAddress,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
	}
}

// UserFromDomain builds a fresh model from a domain value
func UserFromDomain(u domain.User) *User {
	m := &User{}
	m.ApplyDomain(u)
	return m
}

// ApplyDomain copies the caller-supplied fields onto the model, preserving
// storage-owned ID and timestamps.
func (m *User) ApplyDomain(u domain.User) {
	m.LoginName = u.LoginName
	m.EmailAddress = u.EmailAddress
	m.FirstName = u.FirstName
	m.LastName = u.LastName
}

// Review represents the reviews table
type Review struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PosID         uint      `gorm:"not null;index" json:"pos_id"`
	AuthorID      uint      `gorm:"not null;index" json:"author_id"`
	Review        string    `gorm:"type:text;not null" json:"review"`
	ApprovalCount int       `gorm:"not null;default:0" json:"approval_count"`
	Approved      bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Pos    *Pos  `gorm:"foreignKey:PosID" json:"-"`
	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}

func (Review) TableName() string {
	return ReviewTableName
}

// ToDomain converts the model to its domain value
func (m *Review) ToDomain() domain.Review {
	return domain.Review{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		PosID:         m.PosID,
		AuthorID:      m.AuthorID,
		Review:        m.Review,
		ApprovalCount: m.ApprovalCount,
		Approved:      m.Approved,
	}
}

// ReviewFromDomain builds a fresh model from a domain value
func ReviewFromDomain(r domain.Review) *Review {
	m := &Review{}
	m.ApplyDomain(r)
	return m
}

// ApplyDomain copies the caller-supplied fields onto the model, preserving
// storage-owned ID and timestamps.
func (m *Review) ApplyDomain(r domain.Review) {
	m.PosID = r.PosID
	m.AuthorID = r.AuthorID
	m.Review = r.Review
	m.ApprovalCount = r.ApprovalCount
	m.Approved = r.Approved
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Pos{},
		&User{},
		&Review{},
	)
}
