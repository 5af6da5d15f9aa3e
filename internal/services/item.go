package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

var (
	// ErrItemNotFound is returned when an item id does not exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrNotItemOwner is returned when a caller mutates an item they do not own.
	ErrNotItemOwner = errors.New("caller does not own this item")
)

const defaultListLimit = 20

// ItemReader defines read operations for items.
type ItemReader interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.ItemDB, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, item *models.ItemDB) (uuid.UUID, error)
	Update(ctx context.Context, item *models.ItemDB) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// ItemCache caches item reads. A miss returns (nil, nil).
type ItemCache interface {
	Get(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error)
	Set(ctx context.Context, item *models.ItemDB) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ItemService handles listing CRUD, ownership checks and event publishing.
type ItemService struct {
	readRepo    ItemReader
	writeRepo   ItemWriter
	cacheRepo   ItemCache
	kafkaWriter KafkaWriter
}

// NewItemService creates a new ItemService. kafkaWriter may be nil, in which
// case event publishing is skipped.
func NewItemService(readRepo ItemReader, writeRepo ItemWriter, cacheRepo ItemCache, kafkaWriter KafkaWriter) *ItemService {
	return &ItemService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an item lifecycle event. Publishing is best-effort
// and never fails the request.
func (s *ItemService) publishEvent(ctx context.Context, eventType string, itemID, ownerID uuid.UUID) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "item_id", itemID)
		return
	}

	event := models.ItemEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ItemID:    itemID,
		OwnerID:   ownerID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal item event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(itemID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish item event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("item event published", "event_id", event.EventID, "type", eventType, "item_id", itemID)
	}
}

// Create stores a new item owned by ownerID. The owner always comes from the
// authenticated caller, never from the request body.
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, in models.ItemUpdate) (*models.Item, error) {
	itemID, err := s.writeRepo.Save(ctx, &models.ItemDB{
		Title:       in.Title,
		Description: in.Description,
		Images:      in.Images,
		Category:    in.Category,
		Condition:   in.Condition,
		OwnerID:     ownerID,
		LookingFor:  in.LookingFor,
		Location:    in.Location,
	})
	if err != nil {
		logger.Log.Errorw("failed to save item", "owner_id", ownerID, "error", err)
		return nil, err
	}

	// Re-read to pick up generated id, timestamps and the expanded owner.
	item, err := s.readRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	s.publishEvent(ctx, "item_created", itemID, ownerID)

	return item.Public(), nil
}

// List returns items matching the filter, newest first. Zero or negative
// limit/page fall back to the defaults (limit 20, page 1).
func (s *ItemService) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	rows, err := s.readRepo.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list items", "error", err)
		return nil, err
	}

	items := make([]models.Item, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].Public())
	}
	return items, nil
}

// Get returns a single item, serving from the cache when possible.
func (s *ItemService) Get(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	cached, err := s.cacheRepo.Get(ctx, itemID)
	if err == nil && cached != nil {
		return cached.Public(), nil
	}

	item, err := s.readRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if err := s.cacheRepo.Set(ctx, item); err != nil {
		logger.Log.Errorw("failed to cache item", "item_id", itemID, "error", err)
	}

	return item.Public(), nil
}

// Update applies a partial update on behalf of callerID. Zero-value fields
// in upd leave the stored values unchanged; updated_at is always refreshed.
func (s *ItemService) Update(ctx context.Context, itemID, callerID uuid.UUID, upd models.ItemUpdate) (*models.Item, error) {
	item, err := s.readRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.OwnerID != callerID {
		return nil, ErrNotItemOwner
	}

	if upd.Title != "" {
		item.Title = upd.Title
	}
	if upd.Description != "" {
		item.Description = upd.Description
	}
	if len(upd.Images) > 0 {
		item.Images = upd.Images
	}
	if upd.Category != "" {
		item.Category = upd.Category
	}
	if upd.Condition != "" {
		item.Condition = upd.Condition
	}
	if upd.LookingFor != "" {
		item.LookingFor = upd.LookingFor
	}
	if upd.Location != "" {
		item.Location = upd.Location
	}

	if err := s.writeRepo.Update(ctx, item); err != nil {
		logger.Log.Errorw("failed to update item", "item_id", itemID, "error", err)
		return nil, err
	}

	if err := s.cacheRepo.Delete(ctx, itemID); err != nil {
		logger.Log.Errorw("failed to evict item from cache", "item_id", itemID, "error", err)
	}

	// Re-read for the refreshed updated_at.
	updated, err := s.readRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrItemNotFound
	}

	s.publishEvent(ctx, "item_updated", itemID, callerID)

	return updated.Public(), nil
}

// Delete removes an item permanently on behalf of callerID.
func (s *ItemService) Delete(ctx context.Context, itemID, callerID uuid.UUID) error {
	item, err := s.readRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to get item", "item_id", itemID, "error", err)
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	if item.OwnerID != callerID {
		return ErrNotItemOwner
	}

	if err := s.writeRepo.Delete(ctx, itemID); err != nil {
		logger.Log.Errorw("failed to delete item", "item_id", itemID, "error", err)
		return err
	}

	if err := s.cacheRepo.Delete(ctx, itemID); err != nil {
		logger.Log.Errorw("failed to evict item from cache", "item_id", itemID, "error", err)
	}

	s.publishEvent(ctx, "item_deleted", itemID, callerID)

	return nil
}

// ListByOwner returns every item of one owner, newest first.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	rows, err := s.readRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list items by owner", "owner_id", ownerID, "error", err)
		return nil, err
	}

	items := make([]models.Item, 0, len(rows))
	for i := range rows {
		items = append(items, *rows[i].Public())
	}
	return items, nil
}
