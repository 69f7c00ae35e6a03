package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect opens a client for the given MongoDB URI. The caller owns the
// client and is responsible for disconnecting it.
func Connect(uri string) (*mongo.Client, error) {
	connectionString := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(connectionString)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the unique indexes the application relies on:
// one email per user, and at most one watchlist entry per (user, movie).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("watchlist").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "movie_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
