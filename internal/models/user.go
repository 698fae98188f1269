package models

import (
	"fmt"

	"github.com/MatheusFelipeLS/movie-watchlist/internal/storage"
)

type User struct {
	ID       string
	Email    string
	Password string // hash, never the plaintext
}

var userKeys = map[string]bool{
	"_id": true, "email": true, "password": true,
}

func UserFromDoc(d storage.Doc) (*User, error) {
	if err := checkKeys(d, userKeys); err != nil {
		return nil, fmt.Errorf("user document: %w", err)
	}
	return &User{
		ID:       asString(d["_id"]),
		Email:    asString(d["email"]),
		Password: asString(d["password"]),
	}, nil
}

func (u *User) Doc() storage.Doc {
	return storage.Doc{
		"_id":      u.ID,
		"email":    u.Email,
		"password": u.Password,
	}
}
