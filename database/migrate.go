package database

import (
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/models"

	"gorm.io/gorm"
)

// Migrate creates the four tables, the unique email index and the composite
// unique index on (user_id, target_type, target_id) declared in the models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Planet{},
		&models.Favorite{},
	)
}
