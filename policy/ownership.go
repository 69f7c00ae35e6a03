// Package policy decides whether an acting user may mutate a resource.
// Only the owner recorded at creation time may update or delete a movie or
// watchlist item; reads are unrestricted.
package policy

import "go.mongodb.org/mongo-driver/v2/bson"

// Owns reports whether actor is the owner of a resource. The comparison is
// a typed ObjectID equality, never a string one.
func Owns(actor, owner bson.ObjectID) bool {
	return actor == owner
}
