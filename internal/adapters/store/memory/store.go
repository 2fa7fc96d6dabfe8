package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Store is an in-memory KVStore. Tests use it to simulate the storage
// substrate, including quota exhaustion and write failures on chosen keys.
type Store struct {
	mu         sync.Mutex
	data       map[string]string
	quotaBytes int
	failKeys   map[string]error
}

func New() *Store {
	return &Store{data: map[string]string{}, failKeys: map[string]error{}}
}

// SetQuota caps the total stored size (UTF-16 accounting); 0 disables it.
func (s *Store) SetQuota(bytes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotaBytes = bytes
}

// FailKey makes every subsequent Set of key return err.
func (s *Store) FailKey(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failKeys[key] = err
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.failKeys[key]; ok {
		return err
	}
	if s.quotaBytes > 0 {
		used := 0
		for k, v := range s.data {
			if k != key {
				used += domain.UTF16Bytes(v)
			}
		}
		if used+domain.UTF16Bytes(value) > s.quotaBytes {
			return domain.ErrStorageQuotaExceeded
		}
	}
	s.data[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *Store) Keys(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
