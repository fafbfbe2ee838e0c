// Package memory holds a mutex-guarded in-process ResourceStore. It backs
// the test suites and mirrors the owner-filtering contract of the postgres
// implementation.
package memory

import (
	"context"
	"sort"
	"sync"

	"go-resume-backend/internal/domain"

	"github.com/google/uuid"
)

type ResourceStore struct {
	mu     sync.RWMutex
	tables map[domain.ResourceName]map[uuid.UUID]domain.Entity
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		tables: make(map[domain.ResourceName]map[uuid.UUID]domain.Entity),
	}
}

func (s *ResourceStore) Insert(_ context.Context, res domain.ResourceName, e domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables[res] == nil {
		s.tables[res] = make(map[uuid.UUID]domain.Entity)
	}
	s.tables[res][e.GetID()] = e
	return nil
}

func (s *ResourceStore) FindByID(_ context.Context, res domain.ResourceName, id uuid.UUID, owner *uuid.UUID) (domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.tables[res][id]
	if !ok || !ownedBy(e, owner) {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (s *ResourceStore) FindAll(_ context.Context, res domain.ResourceName, owner *uuid.UUID) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Entity
	for _, e := range s.tables[res] {
		if ownedBy(e, owner) {
			out = append(out, e)
		}
	}
	// v7 ids order by creation time, so id order is insertion order.
	sort.Slice(out, func(i, j int) bool {
		return out[i].GetID().String() < out[j].GetID().String()
	})
	return out, nil
}

func (s *ResourceStore) Update(_ context.Context, res domain.ResourceName, e domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[res][e.GetID()]; !ok {
		return domain.ErrNotFound
	}
	s.tables[res][e.GetID()] = e
	return nil
}

func (s *ResourceStore) Delete(_ context.Context, res domain.ResourceName, id uuid.UUID, owner *uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.tables[res][id]
	if !ok || !ownedBy(e, owner) {
		return domain.ErrNotFound
	}
	delete(s.tables[res], id)
	return nil
}

func ownedBy(e domain.Entity, owner *uuid.UUID) bool {
	if owner == nil {
		return true
	}
	scoped, ok := e.(domain.UserScoped)
	return ok && scoped.OwnerID() == *owner
}
