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

type PeopleController struct {
	db *gorm.DB
}

func NewPeopleController() *PeopleController {
	return &PeopleController{db: utils.GetDB()}
}

// GET /people
func (pc *PeopleController) List(c *gin.Context) {
	people := []models.Person{}
	if err := pc.db.Find(&people).Error; err != nil {
		utils.LogError(err, "list people")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while listing people", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, people)
}

// GET /people/:person_id
func (pc *PeopleController) Get(c *gin.Context) {
	personID, err := utils.ParseID(c.Param("person_id"), "person_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var person models.Person
	if err := pc.db.First(&person, personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Person with id %d not found", personID)})
			return
		}
		utils.LogError(err, "get person")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while loading person", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, person)
}
