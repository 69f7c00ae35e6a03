package controller

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/LaibaTARIQ-20/Backend/models"
	"github.com/LaibaTARIQ-20/Backend/policy"
	"github.com/LaibaTARIQ-20/Backend/repository"
	"github.com/LaibaTARIQ-20/Backend/utils"
	"github.com/LaibaTARIQ-20/Backend/validators"
)

type MovieController struct {
	movies repository.MovieRepository
	logger *zap.Logger
}

func NewMovieController(movies repository.MovieRepository, logger *zap.Logger) *MovieController {
	return &MovieController{movies: movies, logger: logger}
}

// GetMovies lists every movie with its owner expanded. No auth required.
func (mc *MovieController) GetMovies(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	movies, err := mc.movies.ListWithOwners(ctx)
	if err != nil {
		mc.logger.Error("failed to list movies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if movies == nil {
		movies = []models.MovieWithOwner{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(movies),
		"data":    gin.H{"movies": movies},
	})
}

func (mc *MovieController) CreateMovie(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	user, err := utils.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var in models.MovieInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validators.ValidateCreateMovie(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie := models.Movie{
		Title:     *in.Title,
		Genres:    in.Genres,
		CreatedBy: user.ID,
	}
	if in.Overview != nil {
		movie.Overview = *in.Overview
	}
	if in.ReleaseYear != nil {
		movie.ReleaseYear = *in.ReleaseYear
	}
	if in.Runtime != nil {
		movie.Runtime = *in.Runtime
	}
	if in.PosterURL != nil {
		movie.PosterURL = *in.PosterURL
	}

	created, err := mc.movies.Insert(ctx, movie)
	if err != nil {
		mc.logger.Error("failed to create movie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"movie": created},
	})
}

func (mc *MovieController) UpdateMovie(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	user, err := utils.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	movie, err := mc.movies.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	if err != nil {
		mc.logger.Error("failed to fetch movie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !policy.Owns(user.ID, movie.CreatedBy) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own movies"})
		return
	}

	var in models.MovieInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validators.ValidateUpdateMovie(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := mc.movies.Update(ctx, id, in)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	if err != nil {
		mc.logger.Error("failed to update movie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"movie": updated},
	})
}

func (mc *MovieController) DeleteMovie(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	user, err := utils.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	movie, err := mc.movies.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	if err != nil {
		mc.logger.Error("failed to fetch movie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !policy.Owns(user.ID, movie.CreatedBy) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own movies"})
		return
	}

	if err := mc.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		mc.logger.Error("failed to delete movie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Movie deleted successfully",
	})
}
