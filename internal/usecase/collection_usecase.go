package usecase

import (
	"context"

	"ondeta/internal/domain/entity"

	"github.com/google/uuid"
)

// AddEntryInput is the snapshot a client sends when saving a title to a list.
type AddEntryInput struct {
	Collection entity.CollectionName
	MediaType  string
	ID         string
	Title      string
	Name       string
	PosterPath string
}

// RemoveEntryInput identifies an entry to drop from a list.
type RemoveEntryInput struct {
	Collection entity.CollectionName
	MediaType  string
	ID         string
}

// CollectionUsecase manages favorites, watchlist and watched.
// Every call returns the full collection as stored after the operation.
type CollectionUsecase interface {
	List(ctx context.Context, userID uuid.UUID, name entity.CollectionName) (entity.Collection, error)
	Add(ctx context.Context, userID uuid.UUID, input *AddEntryInput) (entity.Collection, error)
	Remove(ctx context.Context, userID uuid.UUID, input *RemoveEntryInput) (entity.Collection, error)
}
