package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Movie struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Overview    string        `json:"overview,omitempty" bson:"overview,omitempty"`
	ReleaseYear int           `json:"releaseYear,omitempty" bson:"release_year,omitempty"`
	Genres      []string      `json:"genres,omitempty" bson:"genres,omitempty"`
	Runtime     int           `json:"runtime,omitempty" bson:"runtime,omitempty"`
	PosterURL   string        `json:"posterUrl,omitempty" bson:"poster_url,omitempty"`
	CreatedBy   bson.ObjectID `json:"createdBy" bson:"created_by"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// MovieWithOwner is a movie with created_by expanded to the owner's
// public fields, as returned by the list endpoint.
type MovieWithOwner struct {
	ID          bson.ObjectID `json:"_id" bson:"_id"`
	Title       string        `json:"title" bson:"title"`
	Overview    string        `json:"overview,omitempty" bson:"overview,omitempty"`
	ReleaseYear int           `json:"releaseYear,omitempty" bson:"release_year,omitempty"`
	Genres      []string      `json:"genres,omitempty" bson:"genres,omitempty"`
	Runtime     int           `json:"runtime,omitempty" bson:"runtime,omitempty"`
	PosterURL   string        `json:"posterUrl,omitempty" bson:"poster_url,omitempty"`
	CreatedBy   UserSummary   `json:"createdBy" bson:"created_by"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// MovieInput is the create/update request body. Fields are pointers so an
// absent field can be told apart from a zero value; the validators decide
// which fields are mandatory per endpoint.
type MovieInput struct {
	Title       *string  `json:"title"`
	Overview    *string  `json:"overview"`
	ReleaseYear *int     `json:"releaseYear"`
	Genres      []string `json:"genres"`
	Runtime     *int     `json:"runtime"`
	PosterURL   *string  `json:"posterUrl"`
}
