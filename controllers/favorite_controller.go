package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/models"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/services"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db  *gorm.DB
	svc *services.FavoriteService
}

func NewFavoriteController() *FavoriteController {
	db := utils.GetDB()
	return &FavoriteController{db: db, svc: services.NewFavoriteService(db)}
}

// isUniqueViolation matches the postgres 23505 code and the sqlite message.
// A racing insert that slips past the pre-check hits the composite unique
// index and lands here.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}

// POST /favorite/planet/:planet_id
func (fc *FavoriteController) CreatePlanet(c *gin.Context) {
	fc.createFavorite(c, models.TargetPlanets, "planet_id", "planet")
}

// POST /favorite/people/:person_id
func (fc *FavoriteController) CreatePeople(c *gin.Context) {
	fc.createFavorite(c, models.TargetPeople, "person_id", "person")
}

// createFavorite validates in order: user_id present, user exists, target
// exists, not already favorited. Only then does it insert.
func (fc *FavoriteController) createFavorite(c *gin.Context, targetType models.TargetType, param, noun string) {
	targetID, err := utils.ParseID(c.Param(param), param)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: 'user_id' is required"})
		return
	}

	var user models.User
	if err := fc.db.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No user with id %d", req.UserID)})
			return
		}
		utils.LogError(err, "create favorite: load user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while adding favorite", "details": err.Error()})
		return
	}

	name, ok, err := fc.svc.ResolveName(targetType, targetID)
	if err != nil {
		utils.LogError(err, "create favorite: resolve target")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while adding favorite", "details": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No %s with id %d", noun, targetID)})
		return
	}

	existing, err := fc.svc.Find(targetType, targetID, user.ID)
	if err != nil {
		utils.LogError(err, "create favorite: duplicate check")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while adding favorite", "details": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%s is already in favorites", name)})
		return
	}

	favorite := models.Favorite{
		TargetType: targetType,
		TargetID:   targetID,
		TargetName: name,
		UserID:     user.ID,
	}
	err = fc.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&favorite).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("%s is already in favorites", name)})
			return
		}
		utils.LogError(err, "create favorite: insert")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while adding favorite", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Added %s to favorites", name),
		"favorite": favorite,
	})
}

// DELETE /favorite/people/:person_id/:user_id
func (fc *FavoriteController) DeletePeople(c *gin.Context) {
	fc.deleteFavorite(c, models.TargetPeople, "person_id")
}

// DELETE /favorite/planets/:planet_id/:user_id
func (fc *FavoriteController) DeletePlanet(c *gin.Context) {
	fc.deleteFavorite(c, models.TargetPlanets, "planet_id")
}

func (fc *FavoriteController) deleteFavorite(c *gin.Context, targetType models.TargetType, param string) {
	targetID, err := utils.ParseID(c.Param(param), param)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID, err := utils.ParseID(c.Param("user_id"), "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fav, err := fc.svc.Find(targetType, targetID, userID)
	if err != nil {
		utils.LogError(err, "delete favorite: lookup")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while deleting favorite", "details": err.Error()})
		return
	}
	if fav == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	err = fc.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(fav).Error
	})
	if err != nil {
		utils.LogError(err, "delete favorite: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while deleting favorite", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Deleted %s from favorites", fav.TargetName)})
}
