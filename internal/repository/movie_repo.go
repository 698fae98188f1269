package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/models"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/storage"
)

type MovieRepository struct {
	col storage.Collection
}

func NewMovieRepository(col storage.Collection) *MovieRepository {
	return &MovieRepository{col: col}
}

func (r *MovieRepository) All(ctx context.Context) ([]models.Movie, error) {
	docs, err := r.col.Find(ctx, storage.Doc{})
	if err != nil {
		return nil, err
	}

	out := make([]models.Movie, 0, len(docs))
	for _, d := range docs {
		m, err := models.MovieFromDoc(d)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

// GetByID returns (nil, nil) when no movie has the id.
func (r *MovieRepository) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	d, err := r.col.FindOne(ctx, storage.Doc{"_id": id})
	if err != nil || d == nil {
		return nil, err
	}
	return models.MovieFromDoc(d)
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.Movie) error {
	if m.ID == "" {
		return fmt.Errorf("movie has no id")
	}
	return r.col.InsertOne(ctx, m.Doc())
}

// Update overwrites every field the edit flow owns. rating and last_watched
// belong to their own actions and are left alone.
func (r *MovieRepository) Update(ctx context.Context, m *models.Movie) error {
	d := m.Doc()
	delete(d, "_id")
	delete(d, "rating")
	delete(d, "last_watched")
	return r.col.UpdateOne(ctx, storage.Doc{"_id": m.ID}, d)
}

func (r *MovieRepository) SetRating(ctx context.Context, id string, rating int) error {
	return r.col.UpdateOne(ctx, storage.Doc{"_id": id}, storage.Doc{"rating": rating})
}

func (r *MovieRepository) SetLastWatched(ctx context.Context, id string, at time.Time) error {
	return r.col.UpdateOne(ctx, storage.Doc{"_id": id},
		storage.Doc{"last_watched": at.UTC().Format(time.RFC3339)})
}
