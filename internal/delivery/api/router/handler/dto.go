package handler

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"ondeta/internal/domain/entity"

	"github.com/pkg/errors"
)

// UserSummary is the user block returned with a token.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileImageResponse mirrors entity.ProfileImage.
type ProfileImageResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ProfileResponse is the account as the signed-in user sees it. The password hash never leaves the service.
type ProfileResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	ProfileImage ProfileImageResponse `json:"profileImage"`
	Favorites    CollectionResponse   `json:"favorites"`
	Watchlist    CollectionResponse   `json:"watchlist"`
	Watched      CollectionResponse   `json:"watched"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// MediaEntryResponse is one saved title.
type MediaEntryResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Name       string    `json:"name,omitempty"`
	PosterPath string    `json:"poster_path,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
}

// CollectionResponse always serializes both partitions as arrays.
type CollectionResponse struct {
	Movies  []MediaEntryResponse `json:"movies"`
	TVShows []MediaEntryResponse `json:"tvShows"`
}

func newUserSummary(u *entity.User) UserSummary {
	return UserSummary{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func newProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		ProfileImage: ProfileImageResponse{
			URL:      u.ProfileImage.URL,
			PublicID: u.ProfileImage.PublicID,
		},
		Favorites: newCollectionResponse(u.Favorites),
		Watchlist: newCollectionResponse(u.Watchlist),
		Watched:   newCollectionResponse(u.Watched),
		CreatedAt: u.CreatedAt,
	}
}

func newCollectionResponse(c entity.Collection) CollectionResponse {
	return CollectionResponse{
		Movies:  newEntryResponses(c.Movies),
		TVShows: newEntryResponses(c.TVShows),
	}
}

func newEntryResponses(entries []entity.MediaEntry) []MediaEntryResponse {
	out := make([]MediaEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, MediaEntryResponse{
			ID:         e.ID,
			Title:      e.Title,
			Name:       e.Name,
			PosterPath: e.PosterPath,
			AddedAt:    e.AddedAt,
		})
	}

	return out
}

// FlexibleID accepts a catalog id sent either as a JSON string or a JSON number.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode id")
		}
		*f = FlexibleID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(err, "decode id")
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return errors.Errorf("id must be an integer, got %s", n)
	}
	*f = FlexibleID(n.String())

	return nil
}
