package routes

import (
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/controllers"
	"github.com/4GeeksAcademy/Xander-Codex-API-REST-Star-wars/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin.Engine with middleware and all routes registered.
// Controllers read the shared DB installed via utils.SetDB.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))

	userController := controllers.NewUserController()
	peopleController := controllers.NewPeopleController()
	planetController := controllers.NewPlanetController()
	favoriteController := controllers.NewFavoriteController()

	r.GET("/user", userController.Hello)
	r.GET("/users", userController.List)
	r.GET("/user/:user_id/favorites", userController.Favorites)
	r.DELETE("/user/:user_id", userController.Delete)

	r.GET("/people", peopleController.List)
	r.GET("/people/:person_id", peopleController.Get)
	r.GET("/planets", planetController.List)
	r.GET("/planets/:planet_id", planetController.Get)

	r.POST("/favorite/planet/:planet_id", favoriteController.CreatePlanet)
	r.POST("/favorite/people/:person_id", favoriteController.CreatePeople)
	r.DELETE("/favorite/people/:person_id/:user_id", favoriteController.DeletePeople)
	r.DELETE("/favorite/planets/:planet_id/:user_id", favoriteController.DeletePlanet)

	return r
}
