package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/models"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanetController struct {
	db *gorm.DB
}

func NewPlanetController() *PlanetController {
	return &PlanetController{db: utils.GetDB()}
}

// GET /planets
func (pc *PlanetController) List(c *gin.Context) {
	planets := []models.Planet{}
	if err := pc.db.Find(&planets).Error; err != nil {
		utils.LogError(err, "list planets")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while listing planets", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GET /planets/:planet_id
func (pc *PlanetController) Get(c *gin.Context) {
	planetID, err := utils.ParseID(c.Param("planet_id"), "planet_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var planet models.Planet
	if err := pc.db.First(&planet, planetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Planet with id %d not found", planetID)})
			return
		}
		utils.LogError(err, "get planet")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while loading planet", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, planet)
}
