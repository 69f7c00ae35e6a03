package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/LaibaTARIQ-20/Backend/controller"
	"github.com/LaibaTARIQ-20/Backend/database"
	"github.com/LaibaTARIQ-20/Backend/middlewares"
	"github.com/LaibaTARIQ-20/Backend/repository"
	"github.com/LaibaTARIQ-20/Backend/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	client, err := database.Connect(os.Getenv("MONGO_URI"))
	if err != nil {
		logger.Fatal("failed to connect to mongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from mongoDB", zap.Error(err))
		}
	}()

	db := client.Database(os.Getenv("DATABASE_NAME"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	users := repository.NewUserRepository(db)
	movies := repository.NewMovieRepository(db)
	watchlist := repository.NewWatchlistRepository(db)

	movieController := controller.NewMovieController(movies, logger)
	watchlistController := controller.NewWatchlistController(watchlist, logger)
	userController := controller.NewUserController(users, logger)

	router := gin.Default()
	routes.Unprotected(router, movieController, userController)
	routes.Protected(router, middlewares.Auth(users, logger), movieController, watchlistController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
