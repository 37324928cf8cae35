package server

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"autoforge/forge"
)

// ErrNotFound is returned for unknown or evicted forge ids.
var ErrNotFound = errors.New("forge not found")

// record is one stored pipeline run.
type record struct {
	ID        string       `json:"id"`
	Idea      string       `json:"idea"`
	CreatedAt time.Time    `json:"createdAt"`
	Result    forge.Result `json:"result"`
}

// resultStore keeps the most recent records; the oldest is evicted once
// the store is full. The cache does its own locking.
type resultStore struct {
	cache *lru.Cache[string, record]
}

func newResultStore(size int) (*resultStore, error) {
	cache, err := lru.New[string, record](size)
	if err != nil {
		return nil, fmt.Errorf("create result store: %w", err)
	}
	return &resultStore{cache: cache}, nil
}

func (s *resultStore) add(rec record) {
	s.cache.Add(rec.ID, rec)
}

func (s *resultStore) get(id string) (record, error) {
	rec, ok := s.cache.Get(id)
	if !ok {
		return record{}, ErrNotFound
	}
	return rec, nil
}

func (s *resultStore) len() int {
	return s.cache.Len()
}
