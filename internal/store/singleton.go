package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// singleton resolves an entity kind constrained by convention to at most
// one row: reads find the first row, writes update it in place or insert
// it when absent. The row id stays stable across upserts.
type singleton[T any] struct {
	db *gorm.DB
}

func newSingleton[T any](db *gorm.DB) singleton[T] {
	return singleton[T]{db: db}
}

// Get returns the row, or ErrNotFound when none exists yet.
func (s *singleton[T]) Get() (*T, error) {
	var item T
	err := s.db.First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get singleton: %w", err)
	}
	return &item, nil
}

// GetOrCreate returns the row, inserting fresh when none exists. The
// reload after insert picks up column defaults.
func (s *singleton[T]) GetOrCreate(fresh *T) (*T, error) {
	existing, err := s.Get()
	if errors.Is(err, ErrNotFound) {
		if err := s.db.Create(fresh).Error; err != nil {
			return nil, fmt.Errorf("create singleton: %w", err)
		}
		var created T
		if err := s.db.First(&created).Error; err != nil {
			return nil, fmt.Errorf("create singleton: reload: %w", err)
		}
		return &created, nil
	}
	if err != nil {
		return nil, err
	}
	return existing, nil
}

// Upsert applies changes to the existing row, or inserts fresh (with the
// changes applied) when no row exists yet.
func (s *singleton[T]) Upsert(changes map[string]interface{}, fresh *T) (*T, error) {
	var existing T
	err := s.db.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(fresh).Error; err != nil {
			return nil, fmt.Errorf("upsert singleton: %w", err)
		}
		if len(changes) > 0 {
			if err := s.db.Model(fresh).Updates(changes).Error; err != nil {
				return nil, fmt.Errorf("upsert singleton: %w", err)
			}
		}
		var created T
		if err := s.db.First(&created).Error; err != nil {
			return nil, fmt.Errorf("upsert singleton: reload: %w", err)
		}
		return &created, nil
	}
	if err != nil {
		return nil, fmt.Errorf("upsert singleton: %w", err)
	}
	if len(changes) > 0 {
		if err := s.db.Model(&existing).Updates(changes).Error; err != nil {
			return nil, fmt.Errorf("upsert singleton: %w", err)
		}
	}
	var updated T
	if err := s.db.First(&updated).Error; err != nil {
		return nil, fmt.Errorf("upsert singleton: reload: %w", err)
	}
	return &updated, nil
}
