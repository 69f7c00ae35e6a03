package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/LaibaTARIQ-20/Backend/models"
)

type movieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{collection: db.Collection("movies")}
}

func (r *movieRepository) Insert(ctx context.Context, movie models.Movie) (models.Movie, error) {
	if movie.ID.IsZero() {
		movie.ID = bson.NewObjectID()
	}
	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Movie{}, ErrNotFound
	}
	if err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

// Update merges only the provided fields into the stored document and
// returns the updated movie.
func (r *movieRepository) Update(ctx context.Context, id bson.ObjectID, in models.MovieInput) (models.Movie, error) {
	set := bson.M{"updated_at": time.Now()}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Overview != nil {
		set["overview"] = *in.Overview
	}
	if in.ReleaseYear != nil {
		set["release_year"] = *in.ReleaseYear
	}
	if in.Genres != nil {
		set["genres"] = in.Genres
	}
	if in.Runtime != nil {
		set["runtime"] = *in.Runtime
	}
	if in.PosterURL != nil {
		set["poster_url"] = *in.PosterURL
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var movie models.Movie
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Movie{}, ErrNotFound
	}
	if err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

func (r *movieRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListWithOwners returns every movie with created_by expanded to the
// owner's name and email.
func (r *movieRepository) ListWithOwners(ctx context.Context) ([]models.MovieWithOwner, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "created_by",
			"foreignField": "_id",
			"as":           "created_by",
		}}},
		bson.D{{Key: "$unwind", Value: "$created_by"}},
		bson.D{{Key: "$project", Value: bson.M{
			"title":            1,
			"overview":         1,
			"release_year":     1,
			"genres":           1,
			"runtime":          1,
			"poster_url":       1,
			"created_at":       1,
			"updated_at":       1,
			"created_by._id":   1,
			"created_by.name":  1,
			"created_by.email": 1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.MovieWithOwner
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
