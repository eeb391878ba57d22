package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hamshark/internal/composer"
)

// Fixed storage keys. The cart and the reusable custom-meal definitions
// live under separate keys so meals survive cart clearing.
const (
	cartKey        = "hamshark-cart"
	customMealsKey = "hamshark-custom-meals"
)

// Store persists cart state durably. Every cart mutation writes through
// immediately; there is no batching. Concurrent writers from separate
// contexts are last-write-wins.
type Store interface {
	// SaveCart replaces the persisted cart with the given line items.
	SaveCart(items []LineItem) error

	// LoadCart reads the persisted cart. A missing record yields an
	// empty cart, not an error.
	LoadCart() ([]LineItem, error)

	// SaveCustomMeals replaces the persisted custom-meal definitions.
	SaveCustomMeals(meals []composer.CustomMeal) error

	// LoadCustomMeals reads the persisted custom-meal definitions.
	LoadCustomMeals() ([]composer.CustomMeal, error)
}

// fileStore implements Store as JSON files under a state directory.
type fileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cart state directory: %w", err)
	}
	return &fileStore{dir: dir}, nil
}

func (s *fileStore) SaveCart(items []LineItem) error {
	return s.write(cartKey, items)
}

func (s *fileStore) LoadCart() ([]LineItem, error) {
	var items []LineItem
	if err := s.read(cartKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *fileStore) SaveCustomMeals(meals []composer.CustomMeal) error {
	return s.write(customMealsKey, meals)
}

func (s *fileStore) LoadCustomMeals() ([]composer.CustomMeal, error) {
	var meals []composer.CustomMeal
	if err := s.read(customMealsKey, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// write marshals v and atomically replaces the key's file so a reader in
// another context never observes a partial write.
func (s *fileStore) write(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	path := filepath.Join(s.dir, key+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

func (s *fileStore) read(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, key+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// memoryStore implements Store in memory for tests.
type memoryStore struct {
	mu    sync.Mutex
	cart  []byte
	meals []byte
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) SaveCart(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cart = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) LoadCart() ([]LineItem, error) {
	s.mu.Lock()
	data := s.cart
	s.mu.Unlock()
	if data == nil {
		return nil, nil
	}
	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *memoryStore) SaveCustomMeals(meals []composer.CustomMeal) error {
	data, err := json.Marshal(meals)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.meals = data
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) LoadCustomMeals() ([]composer.CustomMeal, error) {
	s.mu.Lock()
	data := s.meals
	s.mu.Unlock()
	if data == nil {
		return nil, nil
	}
	var meals []composer.CustomMeal
	if err := json.Unmarshal(data, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}
