// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultProfileImageID marks the shared placeholder image. It is never deleted from the image host.
const DefaultProfileImageID = "default_profile_image"

// ProfileImage references an image stored on the image host.
type ProfileImage struct {
	PublicID string // Provider-side key used to delete the image later.
	URL      string // Public URL served to clients.
}

// IsDefault reports whether the image is the shared placeholder.
func (p ProfileImage) IsDefault() bool {
	return p.PublicID == "" || p.PublicID == DefaultProfileImageID
}

// User is the account record. It owns the three personal collections.
type User struct {
	ID           uuid.UUID    // Assigned at creation, never changes.
	Name         string       // Display name, at most 50 characters.
	Email        string       // Unique login identifier, stored lower-cased.
	PasswordHash string       // bcrypt hash. Never returned or logged.
	ProfileImage ProfileImage // Current avatar.
	Favorites    Collection
	Watchlist    Collection
	Watched      Collection
	Version      int64 // Incremented on every collection write; guards concurrent updates.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds an account with empty collections and the placeholder avatar.
func NewUser(name, email, passwordHash, defaultImageURL string) *User {
	return &User{
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		ProfileImage: ProfileImage{
			PublicID: DefaultProfileImageID,
			URL:      defaultImageURL,
		},
		Favorites: NewCollection(),
		Watchlist: NewCollection(),
		Watched:   NewCollection(),
	}
}

// Collection returns a pointer to the named collection so callers can mutate it in place.
func (u *User) Collection(name CollectionName) *Collection {
	switch name {
	case CollectionFavorites:
		return &u.Favorites
	case CollectionWatchlist:
		return &u.Watchlist
	case CollectionWatched:
		return &u.Watched
	default:
		return nil
	}
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
