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

type UserController struct {
	db *gorm.DB
}

func NewUserController() *UserController {
	return &UserController{db: utils.GetDB()}
}

// GET /user
func (uc *UserController) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Hello, this is your GET /user response"})
}

// GET /users
func (uc *UserController) List(c *gin.Context) {
	users := []models.User{}
	if err := uc.db.Preload("Favorites").Find(&users).Error; err != nil {
		utils.LogError(err, "list users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while listing users", "details": err.Error()})
		return
	}
	// An empty favorites list serializes as [], not null.
	for i := range users {
		if users[i].Favorites == nil {
			users[i].Favorites = []models.Favorite{}
		}
	}
	c.JSON(http.StatusOK, users)
}

// GET /user/:user_id/favorites
func (uc *UserController) Favorites(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("user_id"), "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No user with id %d", userID)})
			return
		}
		utils.LogError(err, "user favorites: load user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while listing favorites", "details": err.Error()})
		return
	}

	favorites := []models.Favorite{}
	if err := uc.db.Where("user_id = ?", user.ID).Find(&favorites).Error; err != nil {
		utils.LogError(err, "user favorites: load favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while listing favorites", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// DELETE /user/:user_id
// Removes the user and all of their favorites in one transaction.
func (uc *UserController) Delete(c *gin.Context) {
	userID, err := utils.ParseID(c.Param("user_id"), "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := uc.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("User with id %d not found", userID)})
			return
		}
		utils.LogError(err, "delete user: load user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while deleting user", "details": err.Error()})
		return
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		utils.LogError(err, "delete user: delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while deleting user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Deleted user %s", user.Email)})
}
