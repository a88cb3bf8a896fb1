package config

import (
	"log"

	"campuscoffee/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding for development
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedSamplePos(); err != nil {
		log.Printf("⚠️ POS seeder skipped: %v", err)
	}
	if err := s.seedSampleUser(); err != nil {
		log.Printf("⚠️ User seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedSamplePos seeds a sample POS for local development
func (s *Seeder) seedSamplePos() error {
	var count int64
	s.db.Model(&models.Pos{}).Count(&count)
	if count > 0 {
		return nil
	}

	pos := &models.Pos{
		Name:        "Rada Coffee",
		Description: "Coffee bar in the Mathematikon foyer",
		Type:        "CAFE",
		Campus:      "INF",
		Street:      "Im Neuenheimer Feld",
		HouseNumber: "205",
		PostalCode:  69120,
		City:        "Heidelberg",
	}

	if err := s.db.Create(pos).Error; err != nil {
		return err
	}

	log.Printf("✅ Sample POS created: %s", pos.Name)
	return nil
}

// seedSampleUser seeds a sample user for local development
func (s *Seeder) seedSampleUser() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	user := &models.User{
		LoginName:    "demo",
		EmailAddress: "demo@example.com",
		FirstName:    "Demo",
		LastName:     "User",
	}

	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("✅ Sample user created: %s", user.LoginName)
	return nil
}
