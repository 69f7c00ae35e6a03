// Package repository wraps the MongoDB collections behind small interfaces
// so the controllers never see the client directly and tests can swap in a
// fake store.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/LaibaTARIQ-20/Backend/models"
)

// ErrNotFound is returned when an id does not resolve to a stored record.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

type MovieRepository interface {
	Insert(ctx context.Context, movie models.Movie) (models.Movie, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Movie, error)
	Update(ctx context.Context, id bson.ObjectID, in models.MovieInput) (models.Movie, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ListWithOwners(ctx context.Context) ([]models.MovieWithOwner, error)
}

type WatchlistRepository interface {
	Insert(ctx context.Context, item models.WatchlistItem) (models.WatchlistItem, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.WatchlistItem, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID bson.ObjectID) (models.WatchlistItem, error)
	Update(ctx context.Context, id bson.ObjectID, in models.WatchlistUpdateInput) (models.WatchlistItem, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	FindDetailByID(ctx context.Context, id bson.ObjectID) (models.WatchlistItemDetail, error)
}

type UserRepository interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	UpdateTokens(ctx context.Context, id bson.ObjectID, token, refreshToken string) error
}
