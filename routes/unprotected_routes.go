package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LaibaTARIQ-20/Backend/controller"
)

func Unprotected(router *gin.Engine, movies *controller.MovieController, users *controller.UserController) {
	router.GET("/movies", movies.GetMovies)

	auth := router.Group("/auth")
	auth.POST("/register", users.Register)
	auth.POST("/login", users.Login)
	auth.POST("/logout", users.Logout)
}
