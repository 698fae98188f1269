package repository

import (
	"context"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/models"
	"github.com/MatheusFelipeLS/movie-watchlist/internal/storage"
)

type UserRepository struct {
	col storage.Collection
}

func NewUserRepository(col storage.Collection) *UserRepository {
	return &UserRepository{col: col}
}

// FindByEmail returns (nil, nil) when no user has the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	d, err := r.col.FindOne(ctx, storage.Doc{"email": email})
	if err != nil || d == nil {
		return nil, err
	}
	return models.UserFromDoc(d)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	d, err := r.col.FindOne(ctx, storage.Doc{"_id": id})
	if err != nil || d == nil {
		return nil, err
	}
	return models.UserFromDoc(d)
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	return r.col.InsertOne(ctx, u.Doc())
}
