package entity

import (
	"slices"
	"time"

	domainerrors "ondeta/internal/domain/errors"
)

// MediaKind selects which typed sub-list an entry belongs to.
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindTV    MediaKind = "tv"
)

// ParseMediaKind validates a client-supplied media type.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case MediaKindMovie, MediaKindTV:
		return MediaKind(s), nil
	default:
		return "", domainerrors.ErrInvalidMediaType.WithDetails("mediaType must be movie or tv")
	}
}

// CollectionName identifies one of the three personal lists.
type CollectionName string

const (
	CollectionFavorites CollectionName = "favorites"
	CollectionWatchlist CollectionName = "watchlist"
	CollectionWatched   CollectionName = "watched"
)

// CollectionNames lists every collection in display order.
var CollectionNames = []CollectionName{CollectionFavorites, CollectionWatchlist, CollectionWatched}

// MediaEntry is a snapshot of a catalog item taken when it was added.
// It is not refreshed from the catalog; remove and re-add to update it.
type MediaEntry struct {
	ID         string // Catalog numeric id, stored as text.
	Title      string // Set for movies.
	Name       string // Set for tv shows.
	PosterPath string
	AddedAt    time.Time
}

// Collection is one personal list split by media kind.
type Collection struct {
	Movies  []MediaEntry
	TVShows []MediaEntry
}

// NewCollection returns a collection with non-nil, empty partitions.
func NewCollection() Collection {
	return Collection{
		Movies:  []MediaEntry{},
		TVShows: []MediaEntry{},
	}
}

func (c *Collection) partition(kind MediaKind) *[]MediaEntry {
	if kind == MediaKindTV {
		return &c.TVShows
	}

	return &c.Movies
}

// Contains reports whether an entry with id exists in the kind partition.
func (c *Collection) Contains(kind MediaKind, id string) bool {
	return slices.ContainsFunc(*c.partition(kind), func(e MediaEntry) bool { return e.ID == id })
}

// Add appends entry to the kind partition. A second add of the same id fails with ErrDuplicateEntry.
func (c *Collection) Add(kind MediaKind, entry MediaEntry) error {
	if c.Contains(kind, entry.ID) {
		return domainerrors.ErrDuplicateEntry
	}

	p := c.partition(kind)
	*p = append(*p, entry)

	return nil
}

// Remove filters out the entry with id. It reports whether anything was removed.
func (c *Collection) Remove(kind MediaKind, id string) bool {
	p := c.partition(kind)
	before := len(*p)
	*p = slices.DeleteFunc(*p, func(e MediaEntry) bool { return e.ID == id })

	return len(*p) != before
}

// Clone returns a deep copy so snapshots handed to callers cannot alias stored slices.
func (c Collection) Clone() Collection {
	return Collection{
		Movies:  append([]MediaEntry{}, c.Movies...),
		TVShows: append([]MediaEntry{}, c.TVShows...),
	}
}
