package utils

import "gorm.io/gorm"

var db *gorm.DB

// SetDB installs the shared connection used by the controllers.
func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
