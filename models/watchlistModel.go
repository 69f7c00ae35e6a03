package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Watchlist status values. A new item defaults to StatusPlanned.
const (
	StatusPlanned   = "PLANNED"
	StatusWatching  = "WATCHING"
	StatusCompleted = "COMPLETED"
	StatusDropped   = "DROPPED"
)

// ValidStatuses lists every accepted watchlist status.
var ValidStatuses = []string{StatusPlanned, StatusWatching, StatusCompleted, StatusDropped}

type WatchlistItem struct {
	ID        bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId" bson:"user_id"`
	MovieID   bson.ObjectID `json:"movieId" bson:"movie_id"`
	Status    string        `json:"status" bson:"status"`
	Rating    *int          `json:"rating,omitempty" bson:"rating,omitempty"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

// WatchlistItemDetail is a watchlist item with the referenced movie and the
// owning user expanded. The JSON keys keep the userId/movieId names so the
// expanded document replaces the raw ids in responses.
type WatchlistItemDetail struct {
	ID        bson.ObjectID `json:"_id" bson:"_id"`
	User      UserSummary   `json:"userId" bson:"user"`
	Movie     Movie         `json:"movieId" bson:"movie"`
	Status    string        `json:"status" bson:"status"`
	Rating    *int          `json:"rating,omitempty" bson:"rating,omitempty"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}

type WatchlistAddInput struct {
	MovieID string `json:"movieId"`
	Status  string `json:"status"`
	Rating  *int   `json:"rating"`
	Notes   string `json:"notes"`
}

// WatchlistUpdateInput carries the mutable watchlist fields; pointers tell
// an omitted field apart from an explicit zero.
type WatchlistUpdateInput struct {
	Status *string `json:"status"`
	Rating *int    `json:"rating"`
	Notes  *string `json:"notes"`
}
