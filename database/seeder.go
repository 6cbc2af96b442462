package database

import (
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/models"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/utils"

	"gorm.io/gorm"
)

// SeedCatalog fills the people and planets tables when they are empty.
// Seeding never overwrites existing rows.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Person{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		people := []models.Person{
			{Name: "Luke Skywalker", HairColor: "blond"},
			{Name: "Leia Organa", HairColor: "brown"},
			{Name: "Obi-Wan Kenobi", HairColor: "auburn, white"},
			{Name: "Darth Vader", HairColor: "none"},
			{Name: "Chewbacca", HairColor: "brown"},
		}
		if err := db.Create(&people).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Planet{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		planets := []models.Planet{
			{Name: "Tatooine", Diameter: "10465"},
			{Name: "Alderaan", Diameter: "12500"},
			{Name: "Hoth", Diameter: "7200"},
			{Name: "Dagobah", Diameter: "8900"},
			{Name: "Naboo", Diameter: "12120"},
		}
		if err := db.Create(&planets).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedDemoUser creates a first user so the favorites endpoints are usable
// on a fresh database. Passwords are stored hashed.
func SeedDemoUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := utils.HashPassword("changeme")
	if err != nil {
		return err
	}
	return db.Create(&models.User{Email: "demo@starwars.local", Password: hash}).Error
}
