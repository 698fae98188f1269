package service

import (
	"context"
	"errors"
	"time"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/models"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/repository"
)

var ErrMovieNotFound = errors.New("movie not found")

type MovieService struct {
	movies *repository.MovieRepository
}

func NewMovieService(movies *repository.MovieRepository) *MovieService {
	return &MovieService{movies: movies}
}

func (s *MovieService) List(ctx context.Context) ([]models.Movie, error) {
	return s.movies.All(ctx)
}

func (s *MovieService) Get(ctx context.Context, id string) (*models.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMovieNotFound
	}
	return m, nil
}

// Create assigns the movie its id. The id is set exactly once, here.
func (s *MovieService) Create(ctx context.Context, title, director string, year int) (*models.Movie, error) {
	m := &models.Movie{
		ID:       newID(),
		Title:    title,
		Director: director,
		Year:     year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
	}
	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update persists the full edited record. The movie must already exist;
// the edit flow fetches it first.
func (s *MovieService) Update(ctx context.Context, m *models.Movie) error {
	return s.movies.Update(ctx, m)
}

func (s *MovieService) Rate(ctx context.Context, id string, rating int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.movies.SetRating(ctx, id, rating)
}

// MarkWatched stamps the movie with the current time and returns the stamp.
func (s *MovieService) MarkWatched(ctx context.Context, id string) (time.Time, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return time.Time{}, err
	}
	now := time.Now().UTC().Truncate(time.Second)
	return now, s.movies.SetLastWatched(ctx, id, now)
}
