package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

// itemColumns is the select list shared by all item queries. The users join
// expands the owner reference into owner_name.
const itemColumns = `
	i.item_id, i.title, i.description, i.images, i.category, i.condition,
	i.owner_id, u.name AS owner_name, i.looking_for, i.location,
	i.created_at, i.updated_at
`

type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// GetByID returns the item with the given id, or (nil, nil) if absent.
func (r *ItemReadRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN users u ON u.user_id = i.owner_id
		WHERE i.item_id = $1
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, itemID)

	logger.Log.Debugw("item query",
		"query", strings.Join(strings.Fields(query), " "),
		"item_id", itemID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns items matching the filter, newest first. Limit and Page must
// already be normalized by the caller; OFFSET is (page-1)*limit.
func (r *ItemReadRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.ItemDB, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("i.category = $%d", len(args)))
	}
	if filter.Condition != "" {
		args = append(args, filter.Condition)
		where = append(where, fmt.Sprintf("i.condition = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where = append(where, fmt.Sprintf("(i.title ILIKE $%d OR i.description ILIKE $%d)", len(args), len(args)))
	}

	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN users u ON u.user_id = i.owner_id
	`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Debugw("item list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByOwner returns every item of one owner, newest first.
func (r *ItemReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ItemDB, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		JOIN users u ON u.user_id = i.owner_id
		WHERE i.owner_id = $1
		ORDER BY i.created_at DESC
	`

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query, ownerID)

	logger.Log.Debugw("items by owner query",
		"query", strings.Join(strings.Fields(query), " "),
		"owner_id", ownerID,
		"count", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return items, nil
}

type ItemWriteRepository struct {
	db *sqlx.DB
}

func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Save inserts a new item and returns its generated id.
func (r *ItemWriteRepository) Save(ctx context.Context, item *models.ItemDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO items (title, description, images, category, condition, owner_id, looking_for, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING item_id
	`

	var itemID uuid.UUID
	err := r.db.GetContext(ctx, &itemID, query,
		item.Title, item.Description, item.Images, item.Category,
		item.Condition, item.OwnerID, item.LookingFor, item.Location,
	)

	logger.Log.Infow("item insert",
		"query", strings.Join(strings.Fields(query), " "),
		"owner_id", item.OwnerID,
		"item_id", itemID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

// Update overwrites the mutable columns of an item and refreshes updated_at,
// even when no column value actually changed.
func (r *ItemWriteRepository) Update(ctx context.Context, item *models.ItemDB) error {
	const query = `
		UPDATE items
		SET title = $2, description = $3, images = $4, category = $5,
		    condition = $6, looking_for = $7, location = $8, updated_at = NOW()
		WHERE item_id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		item.ItemID, item.Title, item.Description, item.Images,
		item.Category, item.Condition, item.LookingFor, item.Location,
	)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logger.Log.Infow("item update",
		"query", strings.Join(strings.Fields(query), " "),
		"item_id", item.ItemID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes an item permanently.
func (r *ItemWriteRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	const query = `DELETE FROM items WHERE item_id = $1`

	res, err := r.db.ExecContext(ctx, query, itemID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logger.Log.Infow("item delete",
		"query", query,
		"item_id", itemID,
		"rows_affected", rowsAffected,
		"error", err,
	)

	return err
}
