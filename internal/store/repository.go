package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports a lookup miss on a unique key.
var ErrNotFound = errors.New("record not found")

// collection is the CRUD surface shared by every non-singleton entity
// kind. Operations are direct passthroughs to the store; failures
// propagate to the caller and nothing is retried.
type collection[T any] struct {
	db      *gorm.DB
	orderBy string
}

func newCollection[T any](db *gorm.DB, orderBy string) collection[T] {
	return collection[T]{db: db, orderBy: orderBy}
}

// List returns every record sorted by the kind's display ordering. Ties
// keep stored order.
func (c *collection[T]) List() ([]T, error) {
	items := []T{}
	if err := c.db.Order(c.orderBy).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return items, nil
}

func (c *collection[T]) GetByID(id string) (*T, error) {
	var item T
	err := c.db.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get by id: %w", err)
	}
	return &item, nil
}

func (c *collection[T]) Create(item *T) error {
	if err := c.db.Create(item).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Update applies a partial change set (keyed by column name) and returns
// the updated record.
func (c *collection[T]) Update(id string, changes map[string]interface{}) (*T, error) {
	var item T
	err := c.db.Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}
	if len(changes) > 0 {
		if err := c.db.Model(&item).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("update: %w", err)
		}
	}
	var updated T
	if err := c.db.Where("id = ?", id).First(&updated).Error; err != nil {
		return nil, fmt.Errorf("update: reload: %w", err)
	}
	return &updated, nil
}

func (c *collection[T]) Delete(id string) error {
	var item T
	result := c.db.Where("id = ?", id).Delete(&item)
	if result.Error != nil {
		return fmt.Errorf("delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *collection[T]) Count() (int64, error) {
	var item T
	var n int64
	if err := c.db.Model(&item).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
