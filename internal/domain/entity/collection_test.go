package entity

import (
	"testing"
	"time"

	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaKind(t *testing.T) {
	kind, err := ParseMediaKind("movie")
	require.NoError(t, err)
	assert.Equal(t, MediaKindMovie, kind)

	kind, err = ParseMediaKind("tv")
	require.NoError(t, err)
	assert.Equal(t, MediaKindTV, kind)

	for _, bad := range []string{"", "Movie", "series", "all"} {
		_, err := ParseMediaKind(bad)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidMediaType), bad)
	}
}

func TestCollection_AddRejectsDuplicate(t *testing.T) {
	c := NewCollection()
	entry := MediaEntry{ID: "603", Title: "The Matrix", PosterPath: "/p.jpg", AddedAt: time.Now()}

	require.NoError(t, c.Add(MediaKindMovie, entry))
	err := c.Add(MediaKindMovie, entry)

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEntry))
	assert.Len(t, c.Movies, 1)
	assert.Empty(t, c.TVShows)
}

func TestCollection_SameIDDifferentKind(t *testing.T) {
	c := NewCollection()

	require.NoError(t, c.Add(MediaKindMovie, MediaEntry{ID: "1399"}))
	require.NoError(t, c.Add(MediaKindTV, MediaEntry{ID: "1399", Name: "Game of Thrones"}))

	assert.True(t, c.Contains(MediaKindMovie, "1399"))
	assert.True(t, c.Contains(MediaKindTV, "1399"))
}

func TestCollection_RemoveIsIdempotent(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(MediaKindTV, MediaEntry{ID: "1"}))
	require.NoError(t, c.Add(MediaKindTV, MediaEntry{ID: "2"}))

	assert.False(t, c.Remove(MediaKindTV, "404"))
	assert.Len(t, c.TVShows, 2)

	assert.True(t, c.Remove(MediaKindTV, "1"))
	assert.False(t, c.Remove(MediaKindTV, "1"))
	require.Len(t, c.TVShows, 1)
	assert.Equal(t, "2", c.TVShows[0].ID)
}

func TestCollection_AddThenRemoveLeavesEmptyPartition(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(MediaKindMovie, MediaEntry{ID: "603"}))

	c.Remove(MediaKindMovie, "603")

	assert.NotNil(t, c.Movies)
	assert.Empty(t, c.Movies)
}

func TestCollection_CloneDoesNotAlias(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(MediaKindMovie, MediaEntry{ID: "1"}))

	snapshot := c.Clone()
	require.NoError(t, c.Add(MediaKindMovie, MediaEntry{ID: "2"}))
	c.Movies[0].Title = "changed"

	assert.Len(t, snapshot.Movies, 1)
	assert.Empty(t, snapshot.Movies[0].Title)
}

func TestUser_Collection(t *testing.T) {
	u := NewUser("  Ana ", " Ana@X.com ", "hash", "https://img/default.png")

	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "ana@x.com", u.Email)
	assert.True(t, u.ProfileImage.IsDefault())

	for _, name := range CollectionNames {
		require.NotNil(t, u.Collection(name), name)
	}
	assert.Nil(t, u.Collection("history"))

	require.NoError(t, u.Collection(CollectionWatchlist).Add(MediaKindMovie, MediaEntry{ID: "7"}))
	assert.Len(t, u.Watchlist.Movies, 1)
	assert.Empty(t, u.Favorites.Movies)
}

func TestCredits_Director(t *testing.T) {
	c := Credits{Crew: []Person{{Name: "A", Job: "Producer"}, {Name: "Lana Wachowski", Job: "Director"}}}
	assert.Equal(t, "Lana Wachowski", c.Director())

	assert.Empty(t, (&Credits{}).Director())
}
