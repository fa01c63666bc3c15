package target

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Filter narrows List. Name matches as a case-sensitive substring, Owner
// exactly. Empty fields match everything.
type Filter struct {
	Name  string `query:"name"`
	Owner string `query:"owner"`
}

func (f Filter) match(t Target) bool {
	if f.Name != "" && !strings.Contains(t.Name, f.Name) {
		return false
	}
	if f.Owner != "" && t.Owner != f.Owner {
		return false
	}
	return true
}

// Storage persists targets. List results are sorted by name.
type Storage interface {
	Create(ctx context.Context, t Target) error
	Get(ctx context.Context, id uuid.UUID) (Target, error)
	List(ctx context.Context, f Filter) ([]Target, error)
	// RecordAchieved stores value when it beats the current achieved metric
	// and returns the updated target.
	RecordAchieved(ctx context.Context, id uuid.UUID, value float64, unit string) (Target, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryStorage keeps targets in process memory.
type MemoryStorage struct {
	mu      sync.RWMutex
	targets map[uuid.UUID]Target
	names   map[string]uuid.UUID
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		targets: make(map[uuid.UUID]Target),
		names:   make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) Create(ctx context.Context, t Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.names[t.Name]; ok {
		return ErrDuplicateName
	}
	s.targets[t.ID] = clone(t)
	s.names[t.Name] = t.ID
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, id uuid.UUID) (Target, error) {
	if err := ctx.Err(); err != nil {
		return Target{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.targets[id]
	if !ok {
		return Target{}, ErrNotFound
	}
	return clone(t), nil
}

func (s *MemoryStorage) List(ctx context.Context, f Filter) ([]Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]Target, 0, len(s.targets))
	for _, t := range s.targets {
		if f.match(t) {
			out = append(out, clone(t))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Target) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *MemoryStorage) RecordAchieved(ctx context.Context, id uuid.UUID, value float64, unit string) (Target, error) {
	if err := ctx.Err(); err != nil {
		return Target{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.targets[id]
	if !ok {
		return Target{}, ErrNotFound
	}
	if value > t.AchievedMetric {
		t.AchievedMetric = value
		t.AchievedMetricUnit = unit
		t.UpdatedAt = time.Now().UTC()
		s.targets[id] = t
	}
	return clone(t), nil
}

func (s *MemoryStorage) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.targets[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.targets, id)
	delete(s.names, t.Name)
	return nil
}

func clone(t Target) Target {
	t.Tags = slices.Clone(t.Tags)
	return t
}
