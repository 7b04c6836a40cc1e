// Package model holds the GORM persistence models. They are mapped to and from
// domain entities by the repositories and never leave the infra layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// UserModel mirrors the 'users' table. Collections are stored inline as JSON
// documents so a collection write touches exactly one row.
type UserModel struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name                 string           `gorm:"type:varchar(50);not null"`
	Email                string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash         string           `gorm:"type:varchar(255);not null"`
	ProfileImagePublicID string           `gorm:"type:varchar(255)"`
	ProfileImageURL      string           `gorm:"type:text"`
	Favorites            CollectionColumn `gorm:"not null"`
	Watchlist            CollectionColumn `gorm:"not null"`
	Watched              CollectionColumn `gorm:"not null"`
	Version              int64            `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EntryDocument is the stored shape of one collection entry.
type EntryDocument struct {
	ID         string    `json:"id"`
	Title      string    `json:"title,omitempty"`
	Name       string    `json:"name,omitempty"`
	PosterPath string    `json:"poster_path,omitempty"`
	AddedAt    time.Time `json:"addedAt"`
}

// CollectionColumn is a collection serialized into a single JSON column.
type CollectionColumn struct {
	Movies  []EntryDocument `json:"movies"`
	TVShows []EntryDocument `json:"tvShows"`
}

// Value implements driver.Valuer.
func (c CollectionColumn) Value() (driver.Value, error) {
	if c.Movies == nil {
		c.Movies = []EntryDocument{}
	}
	if c.TVShows == nil {
		c.TVShows = []EntryDocument{}
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode collection")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (c *CollectionColumn) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*c = CollectionColumn{}

		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported collection column type %T", value)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "failed to decode collection")
	}

	return nil
}

// GormDBDataType picks jsonb on PostgreSQL and plain text elsewhere.
func (CollectionColumn) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}

	return "text"
}
