package controller

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/LaibaTARIQ-20/Backend/models"
	"github.com/LaibaTARIQ-20/Backend/repository"
)

type fakeWatchlistRepo struct {
	items  map[bson.ObjectID]models.WatchlistItem
	movies map[bson.ObjectID]models.Movie
	owners map[bson.ObjectID]models.UserSummary
}

func newFakeWatchlistRepo() *fakeWatchlistRepo {
	return &fakeWatchlistRepo{
		items:  map[bson.ObjectID]models.WatchlistItem{},
		movies: map[bson.ObjectID]models.Movie{},
		owners: map[bson.ObjectID]models.UserSummary{},
	}
}

func (f *fakeWatchlistRepo) Insert(ctx context.Context, item models.WatchlistItem) (models.WatchlistItem, error) {
	for _, existing := range f.items {
		if existing.UserID == item.UserID && existing.MovieID == item.MovieID {
			return models.WatchlistItem{}, repository.ErrDuplicate
		}
	}
	if item.ID.IsZero() {
		item.ID = bson.NewObjectID()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeWatchlistRepo) FindByID(ctx context.Context, id bson.ObjectID) (models.WatchlistItem, error) {
	item, ok := f.items[id]
	if !ok {
		return models.WatchlistItem{}, repository.ErrNotFound
	}
	return item, nil
}

func (f *fakeWatchlistRepo) FindByUserAndMovie(ctx context.Context, userID, movieID bson.ObjectID) (models.WatchlistItem, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.MovieID == movieID {
			return item, nil
		}
	}
	return models.WatchlistItem{}, repository.ErrNotFound
}

func (f *fakeWatchlistRepo) Update(ctx context.Context, id bson.ObjectID, in models.WatchlistUpdateInput) (models.WatchlistItem, error) {
	item, ok := f.items[id]
	if !ok {
		return models.WatchlistItem{}, repository.ErrNotFound
	}
	if in.Status != nil {
		item.Status = *in.Status
	}
	if in.Rating != nil {
		item.Rating = in.Rating
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = time.Now()
	f.items[id] = item
	return item, nil
}

func (f *fakeWatchlistRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeWatchlistRepo) FindDetailByID(ctx context.Context, id bson.ObjectID) (models.WatchlistItemDetail, error) {
	item, ok := f.items[id]
	if !ok {
		return models.WatchlistItemDetail{}, repository.ErrNotFound
	}
	return models.WatchlistItemDetail{
		ID:        item.ID,
		User:      f.owners[item.UserID],
		Movie:     f.movies[item.MovieID],
		Status:    item.Status,
		Rating:    item.Rating,
		Notes:     item.Notes,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, nil
}

func newWatchlistRouter(repo *fakeWatchlistRepo, user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	wc := NewWatchlistController(repo, zap.NewNop())
	router := gin.New()
	router.POST("/watchlist", asUser(user), wc.AddToWatchlist)
	router.PUT("/watchlist/:id", asUser(user), wc.UpdateWatchlistItem)
	router.DELETE("/watchlist/:id", asUser(user), wc.RemoveFromWatchlist)
	return router
}

func seedMovie(repo *fakeWatchlistRepo, owner models.User) models.Movie {
	movie := models.Movie{ID: bson.NewObjectID(), Title: "Dune", CreatedBy: owner.ID}
	repo.movies[movie.ID] = movie
	repo.owners[owner.ID] = models.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	return movie
}

func TestAddToWatchlist_DefaultsToPlanned(t *testing.T) {
	repo := newFakeWatchlistRepo()
	user := testUser("Paul", "dune@arrakis.io")
	movie := seedMovie(repo, user)
	router := newWatchlistRouter(repo, user)

	rec := doJSON(t, router, http.MethodPost, "/watchlist", gin.H{"movieId": movie.ID.Hex()})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if len(repo.items) != 1 {
		t.Fatalf("stored items = %d, want 1", len(repo.items))
	}
	for _, item := range repo.items {
		if item.Status != models.StatusPlanned {
			t.Errorf("status = %q, want %q", item.Status, models.StatusPlanned)
		}
		if item.UserID != user.ID {
			t.Errorf("userId = %v, want %v", item.UserID, user.ID)
		}
	}

	body := decodeBody(t, rec)
	detail := body["data"].(map[string]any)["watchlistItem"].(map[string]any)
	expandedMovie := detail["movieId"].(map[string]any)
	if expandedMovie["title"] != "Dune" {
		t.Errorf("movie not expanded in response: %v", detail["movieId"])
	}
	expandedUser := detail["userId"].(map[string]any)
	if expandedUser["email"] != "dune@arrakis.io" {
		t.Errorf("user not expanded in response: %v", detail["userId"])
	}
}

func TestAddToWatchlist_DuplicatePair(t *testing.T) {
	repo := newFakeWatchlistRepo()
	user := testUser("Paul", "dune@arrakis.io")
	movie := seedMovie(repo, user)
	router := newWatchlistRouter(repo, user)

	rec := doJSON(t, router, http.MethodPost, "/watchlist", gin.H{"movieId": movie.ID.Hex()})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first add status = %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/watchlist", gin.H{"movieId": movie.ID.Hex()})
	if rec.Code != http.StatusConflict {
		t.Errorf("second add status = %d, want %d", rec.Code, http.StatusConflict)
	}
	if len(repo.items) != 1 {
		t.Errorf("stored items = %d, want exactly 1", len(repo.items))
	}
}

func TestAddToWatchlist_SameMovieDifferentUsers(t *testing.T) {
	repo := newFakeWatchlistRepo()
	first := testUser("Paul", "dune@arrakis.io")
	second := testUser("Chani", "chani@arrakis.io")
	movie := seedMovie(repo, first)
	repo.owners[second.ID] = models.UserSummary{ID: second.ID, Name: second.Name, Email: second.Email}

	rec := doJSON(t, newWatchlistRouter(repo, first), http.MethodPost, "/watchlist", gin.H{"movieId": movie.ID.Hex()})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first user add status = %d", rec.Code)
	}
	rec = doJSON(t, newWatchlistRouter(repo, second), http.MethodPost, "/watchlist", gin.H{"movieId": movie.ID.Hex()})
	if rec.Code != http.StatusCreated {
		t.Errorf("second user add status = %d, uniqueness is per user", rec.Code)
	}
}

func TestAddToWatchlist_InvalidStatus(t *testing.T) {
	repo := newFakeWatchlistRepo()
	user := testUser("Paul", "dune@arrakis.io")
	movie := seedMovie(repo, user)
	router := newWatchlistRouter(repo, user)

	rec := doJSON(t, router, http.MethodPost, "/watchlist", gin.H{"movieId": movie.ID.Hex(), "status": "BINGED"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(repo.items) != 0 {
		t.Error("nothing should be stored on validation failure")
	}
}

func TestUpdateWatchlistItem_NotOwner(t *testing.T) {
	repo := newFakeWatchlistRepo()
	owner := testUser("Paul", "dune@arrakis.io")
	movie := seedMovie(repo, owner)
	item, _ := repo.Insert(context.Background(), models.WatchlistItem{
		UserID:  owner.ID,
		MovieID: movie.ID,
		Status:  models.StatusPlanned,
	})

	intruder := testUser("Feyd", "feyd@giedi.io")
	router := newWatchlistRouter(repo, intruder)

	rec := doJSON(t, router, http.MethodPut, "/watchlist/"+item.ID.Hex(), gin.H{"status": models.StatusCompleted})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if repo.items[item.ID].Status != models.StatusPlanned {
		t.Error("item must be unchanged after a forbidden update")
	}
}

func TestUpdateWatchlistItem_Owner(t *testing.T) {
	repo := newFakeWatchlistRepo()
	owner := testUser("Paul", "dune@arrakis.io")
	movie := seedMovie(repo, owner)
	item, _ := repo.Insert(context.Background(), models.WatchlistItem{
		UserID:  owner.ID,
		MovieID: movie.ID,
		Status:  models.StatusPlanned,
	})

	router := newWatchlistRouter(repo, owner)
	rec := doJSON(t, router, http.MethodPut, "/watchlist/"+item.ID.Hex(), gin.H{
		"status": models.StatusCompleted,
		"rating": 9,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	stored := repo.items[item.ID]
	if stored.Status != models.StatusCompleted {
		t.Errorf("status = %q", stored.Status)
	}
	if stored.Rating == nil || *stored.Rating != 9 {
		t.Errorf("rating = %v, want 9", stored.Rating)
	}
}

func TestRemoveFromWatchlist(t *testing.T) {
	repo := newFakeWatchlistRepo()
	owner := testUser("Paul", "dune@arrakis.io")
	movie := seedMovie(repo, owner)
	item, _ := repo.Insert(context.Background(), models.WatchlistItem{
		UserID:  owner.ID,
		MovieID: movie.ID,
		Status:  models.StatusPlanned,
	})

	router := newWatchlistRouter(repo, owner)

	rec := doJSON(t, router, http.MethodDelete, "/watchlist/"+item.ID.Hex(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodDelete, "/watchlist/"+item.ID.Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRemoveFromWatchlist_NotFound(t *testing.T) {
	router := newWatchlistRouter(newFakeWatchlistRepo(), testUser("Paul", "dune@arrakis.io"))
	rec := doJSON(t, router, http.MethodDelete, "/watchlist/"+bson.NewObjectID().Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
