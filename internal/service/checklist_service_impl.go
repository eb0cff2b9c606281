package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/repository"
)

// ErrInvalidChecklistItem is returned when a toggle names no month or a
// negative action index.
var ErrInvalidChecklistItem = errors.New("invalid checklist item")

type checklistService struct {
	store    repository.PreferenceStore
	observer UseCaseObserver

	mu     sync.Mutex
	state  domain.ChecklistState
	loaded bool
}

func NewChecklistService(store repository.PreferenceStore, observers ...UseCaseObserver) ChecklistService {
	return &checklistService{
		store:    store,
		observer: combineObservers(observers),
		state:    domain.ChecklistState{},
	}
}

func (s *checklistService) Load(ctx context.Context) domain.ChecklistState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(ctx)
	return s.state.Clone()
}

func (s *checklistService) loadLocked(ctx context.Context) {
	startedAt := time.Now()
	fields := map[string]any{"key": repository.KeyChecklist}

	state, err := s.read(ctx)
	if err != nil {
		state = domain.ChecklistState{}
		fields["fallback"] = "empty"
	}
	fields["entries"] = len(state)
	s.state = state
	s.loaded = true
	observe(ctx, s.observer, "checklist-load", startedAt, err, fields)
}

func (s *checklistService) read(ctx context.Context) (domain.ChecklistState, error) {
	raw, ok, err := s.store.Get(ctx, repository.KeyChecklist)
	if err != nil {
		return nil, fmt.Errorf("reading checklist: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return domain.ChecklistState{}, nil
	}
	var state domain.ChecklistState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decoding checklist: %w", err)
	}
	if state == nil {
		// A stored "null" decodes to a nil map.
		state = domain.ChecklistState{}
	}
	return state, nil
}

func (s *checklistService) State(ctx context.Context) domain.ChecklistState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.loadLocked(ctx)
	}
	return s.state.Clone()
}

func (s *checklistService) Toggle(ctx context.Context, monthID string, index int) (state domain.ChecklistState, err error) {
	startedAt := time.Now()
	fields := map[string]any{"month": monthID, "index": index}
	defer func() {
		observe(ctx, s.observer, "checklist-toggle", startedAt, err, fields)
	}()

	if monthID == "" || index < 0 {
		return nil, fmt.Errorf("%w: month %q index %d", ErrInvalidChecklistItem, monthID, index)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.loadLocked(ctx)
	}

	next := s.state.Toggled(monthID, index)
	data, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("encoding checklist: %w", err)
	}
	if err := s.store.Set(ctx, repository.KeyChecklist, string(data)); err != nil {
		return nil, fmt.Errorf("saving checklist: %w", err)
	}
	s.state = next
	fields["done"] = next.Done(monthID, index)
	return next.Clone(), nil
}

func (s *checklistService) Progress(ctx context.Context, monthID string, actionCount int) int {
	return s.State(ctx).Progress(monthID, actionCount)
}
