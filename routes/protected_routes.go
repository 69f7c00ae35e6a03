package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/LaibaTARIQ-20/Backend/controller"
)

func Protected(router *gin.Engine, auth gin.HandlerFunc, movies *controller.MovieController, watchlist *controller.WatchlistController) {
	protected := router.Group("/")
	protected.Use(auth) // middleware only for these routes

	protected.POST("/movies", movies.CreateMovie)
	protected.PUT("/movies/:id", movies.UpdateMovie)
	protected.DELETE("/movies/:id", movies.DeleteMovie)

	protected.POST("/watchlist", watchlist.AddToWatchlist)
	protected.PUT("/watchlist/:id", watchlist.UpdateWatchlistItem)
	protected.DELETE("/watchlist/:id", watchlist.RemoveFromWatchlist)
}
