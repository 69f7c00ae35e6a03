package validators

import (
	"errors"
	"slices"
	"strings"

	"github.com/LaibaTARIQ-20/Backend/models"
)

// ValidateAddToWatchlist checks a watchlist add payload: movieId is
// mandatory, status and rating are optional but bounded.
func ValidateAddToWatchlist(in models.WatchlistAddInput) error {
	if strings.TrimSpace(in.MovieID) == "" {
		return errors.New("Movie ID is required")
	}
	if in.Status != "" && !slices.Contains(models.ValidStatuses, in.Status) {
		return errors.New("Status must be one of: PLANNED, WATCHING, COMPLETED, DROPPED")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 10) {
		return errors.New("Rating must be between 1 and 10")
	}
	return nil
}

// ValidateUpdateWatchlist checks a partial watchlist payload; all fields
// are optional.
func ValidateUpdateWatchlist(in models.WatchlistUpdateInput) error {
	if in.Status != nil && !slices.Contains(models.ValidStatuses, *in.Status) {
		return errors.New("Status must be one of: PLANNED, WATCHING, COMPLETED, DROPPED")
	}
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 10) {
		return errors.New("Rating must be between 1 and 10")
	}
	return nil
}
