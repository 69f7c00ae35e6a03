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

type watchlistRepository struct {
	collection *mongo.Collection
}

func NewWatchlistRepository(db *mongo.Database) WatchlistRepository {
	return &watchlistRepository{collection: db.Collection("watchlist")}
}

// Insert stores a new watchlist item. The unique (user_id, movie_id) index
// turns a concurrent duplicate insert into ErrDuplicate, so the
// check-then-insert in the handler has no race.
func (r *watchlistRepository) Insert(ctx context.Context, item models.WatchlistItem) (models.WatchlistItem, error) {
	if item.ID.IsZero() {
		item.ID = bson.NewObjectID()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return models.WatchlistItem{}, ErrDuplicate
	}
	if err != nil {
		return models.WatchlistItem{}, err
	}
	return item, nil
}

func (r *watchlistRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.WatchlistItem, error) {
	var item models.WatchlistItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.WatchlistItem{}, ErrNotFound
	}
	if err != nil {
		return models.WatchlistItem{}, err
	}
	return item, nil
}

func (r *watchlistRepository) FindByUserAndMovie(ctx context.Context, userID, movieID bson.ObjectID) (models.WatchlistItem, error) {
	var item models.WatchlistItem
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "movie_id": movieID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.WatchlistItem{}, ErrNotFound
	}
	if err != nil {
		return models.WatchlistItem{}, err
	}
	return item, nil
}

func (r *watchlistRepository) Update(ctx context.Context, id bson.ObjectID, in models.WatchlistUpdateInput) (models.WatchlistItem, error) {
	set := bson.M{"updated_at": time.Now()}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Rating != nil {
		set["rating"] = *in.Rating
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.WatchlistItem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.WatchlistItem{}, ErrNotFound
	}
	if err != nil {
		return models.WatchlistItem{}, err
	}
	return item, nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindDetailByID returns one watchlist item with the referenced movie and
// the owning user's public fields expanded.
func (r *watchlistRepository) FindDetailByID(ctx context.Context, id bson.ObjectID) (models.WatchlistItemDetail, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "movies",
			"localField":   "movie_id",
			"foreignField": "_id",
			"as":           "movie",
		}}},
		// Keep the item even when the referenced movie has been deleted.
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$movie", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$project", Value: bson.M{
			"status":     1,
			"rating":     1,
			"notes":      1,
			"created_at": 1,
			"updated_at": 1,
			"movie":      1,
			"user._id":   1,
			"user.name":  1,
			"user.email": 1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.WatchlistItemDetail{}, err
	}
	defer cursor.Close(ctx)

	var details []models.WatchlistItemDetail
	if err = cursor.All(ctx, &details); err != nil {
		return models.WatchlistItemDetail{}, err
	}
	if len(details) == 0 {
		return models.WatchlistItemDetail{}, ErrNotFound
	}
	return details[0], nil
}
