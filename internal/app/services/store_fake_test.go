package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

// fakeRecordStore is an in-memory RecordStore for service tests
type fakeRecordStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{records: make(map[string][]byte)}
}

func (f *fakeRecordStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.records[key]
	if !ok {
		return nil, apperrors.ErrResourceNotFound
	}
	return value, nil
}

func (f *fakeRecordStore) Set(_ context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[key] = data
	return nil
}

func (f *fakeRecordStore) SetIfAbsent(_ context.Context, key string, value interface{}) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.records[key]; exists {
		return false, nil
	}
	f.records[key] = data
	return true, nil
}

func (f *fakeRecordStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, key)
	return nil
}

// failingRecordStore fails reads with a fixed error, for degraded-path tests
type failingRecordStore struct {
	*fakeRecordStore
	getErr error
}

func (f *failingRecordStore) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, f.getErr
}

func (f *fakeRecordStore) GetByPrefix(_ context.Context, prefix string) ([][]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var values [][]byte
	for key, value := range f.records {
		if strings.HasPrefix(key, prefix) {
			values = append(values, value)
		}
	}
	return values, nil
}
