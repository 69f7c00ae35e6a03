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

type WatchlistController struct {
	watchlist repository.WatchlistRepository
	logger    *zap.Logger
}

func NewWatchlistController(watchlist repository.WatchlistRepository, logger *zap.Logger) *WatchlistController {
	return &WatchlistController{watchlist: watchlist, logger: logger}
}

// AddToWatchlist creates a watchlist entry for the caller. A movie can
// appear at most once per user; a second add responds with 409.
func (wc *WatchlistController) AddToWatchlist(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	user, err := utils.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	var in models.WatchlistAddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validators.ValidateAddToWatchlist(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movieID, err := bson.ObjectIDFromHex(in.MovieID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	_, err = wc.watchlist.FindByUserAndMovie(ctx, user.ID, movieID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Movie already in your watchlist"})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		wc.logger.Error("failed to check watchlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := in.Status
	if status == "" {
		status = models.StatusPlanned
	}

	item := models.WatchlistItem{
		UserID:  user.ID,
		MovieID: movieID,
		Status:  status,
		Rating:  in.Rating,
		Notes:   in.Notes,
	}

	created, err := wc.watchlist.Insert(ctx, item)
	if errors.Is(err, repository.ErrDuplicate) {
		// Lost the race against a concurrent add; the unique index caught it.
		c.JSON(http.StatusConflict, gin.H{"error": "Movie already in your watchlist"})
		return
	}
	if err != nil {
		wc.logger.Error("failed to add to watchlist", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	detail, err := wc.watchlist.FindDetailByID(ctx, created.ID)
	if err != nil {
		wc.logger.Error("failed to load watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"watchlistItem": detail},
	})
}

func (wc *WatchlistController) UpdateWatchlistItem(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	user, err := utils.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watchlist item id"})
		return
	}

	item, err := wc.watchlist.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist item not found"})
		return
	}
	if err != nil {
		wc.logger.Error("failed to fetch watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !policy.Owns(user.ID, item.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own watchlist"})
		return
	}

	var in models.WatchlistUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validators.ValidateUpdateWatchlist(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := wc.watchlist.Update(ctx, id, in)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist item not found"})
		return
	}
	if err != nil {
		wc.logger.Error("failed to update watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	detail, err := wc.watchlist.FindDetailByID(ctx, updated.ID)
	if err != nil {
		wc.logger.Error("failed to load watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"watchlistItem": detail},
	})
}

func (wc *WatchlistController) RemoveFromWatchlist(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	user, err := utils.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watchlist item id"})
		return
	}

	item, err := wc.watchlist.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist item not found"})
		return
	}
	if err != nil {
		wc.logger.Error("failed to fetch watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !policy.Owns(user.ID, item.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own watchlist items"})
		return
	}

	if err := wc.watchlist.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Watchlist item not found"})
			return
		}
		wc.logger.Error("failed to remove watchlist item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Removed from watchlist successfully",
	})
}
