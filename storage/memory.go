package storage

import (
	"context"
	"sync"

	"github.com/malusev998/lari"
)

type memoryStorage struct {
	mutex *sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() lari.Storage {
	return memoryStorage{
		mutex: &sync.RWMutex{},
		items: make(map[string]string),
	}
}

func (m memoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}

	return value, nil
}

func (m memoryStorage) Set(_ context.Context, key, value string) error {
	m.mutex.Lock()
	m.items[key] = value
	m.mutex.Unlock()

	return nil
}

func (m memoryStorage) Delete(_ context.Context, key string) error {
	m.mutex.Lock()
	delete(m.items, key)
	m.mutex.Unlock()

	return nil
}

func (m memoryStorage) Migrate() error {
	return nil
}

func (m memoryStorage) Drop() error {
	m.mutex.Lock()
	for key := range m.items {
		delete(m.items, key)
	}
	m.mutex.Unlock()

	return nil
}

func (m memoryStorage) Close() error {
	return nil
}

func (m memoryStorage) GetStorageProviderName() string {
	return string(lari.MemoryProvider)
}
