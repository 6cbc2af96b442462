package main

import (
	"log"

	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/config"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/database"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/routes"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// DATABASE_URL selects postgres; without it a local sqlite file is used.
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		log.Printf("DATABASE_URL not set, using sqlite at %s", cfg.SQLitePath)
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	utils.SetDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	if err := database.SeedDemoUser(db); err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}

	r := routes.SetupRouter()
	log.Printf("Listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
