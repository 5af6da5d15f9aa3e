package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringList stores an ordered list of strings as a jsonb column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return errors.New("unsupported type for StringList")
	}
}

// ItemDB represents an item record in the database. OwnerName is filled by
// queries that join the users table.
type ItemDB struct {
	ItemID      uuid.UUID  `db:"item_id"` // Primary key
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Images      StringList `db:"images"` // Ordered image URLs, never empty
	Category    string     `db:"category"`
	Condition   string     `db:"condition"`
	OwnerID     uuid.UUID  `db:"owner_id"` // Immutable after creation
	OwnerName   string     `db:"owner_name"`
	LookingFor  string     `db:"looking_for"`
	Location    string     `db:"location"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"` // Bumped on every mutation
}

// ItemOwner is the expanded owner reference returned with every item.
type ItemOwner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Item is the client-facing view of an item.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Owner       ItemOwner `json:"owner"`
	LookingFor  string    `json:"lookingFor,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Public converts a database record into its client-facing view.
func (i *ItemDB) Public() *Item {
	return &Item{
		ID:          i.ItemID,
		Title:       i.Title,
		Description: i.Description,
		Images:      i.Images,
		Category:    i.Category,
		Condition:   i.Condition,
		Owner:       ItemOwner{ID: i.OwnerID, Name: i.OwnerName},
		LookingFor:  i.LookingFor,
		Location:    i.Location,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ItemFilter describes the optional listing filters.
type ItemFilter struct {
	Category  string // exact match when non-empty
	Condition string // exact match when non-empty
	Search    string // case-insensitive match against title or description
	Limit     int    // page size, defaults applied by the service
	Page      int    // 1-indexed
}

// ItemUpdate carries a partial update. Zero values mean "leave unchanged";
// an empty string cannot clear a field through this path.
type ItemUpdate struct {
	Title       string
	Description string
	Images      []string
	Category    string
	Condition   string
	LookingFor  string
	Location    string
}

// ItemEvent is published to Kafka on every item mutation.
type ItemEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"` // item_created, item_updated, item_deleted
	ItemID    uuid.UUID `json:"item_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Timestamp int64     `json:"timestamp"`
}
