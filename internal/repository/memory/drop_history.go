package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/repository"
)

// DropHistory keeps chest openings in process memory. It is the default store
// when no database is configured and loses everything on restart.
type DropHistory struct {
	mu       sync.RWMutex
	openings map[uuid.UUID][]domain.ChestOpening
}

// NewDropHistory creates an empty in-memory drop history
func NewDropHistory() *DropHistory {
	return &DropHistory{openings: make(map[uuid.UUID][]domain.ChestOpening)}
}

var _ repository.DropHistory = (*DropHistory)(nil)

// RecordOpening stores a copy of opening, assigning an ID and timestamp when missing
func (r *DropHistory) RecordOpening(_ context.Context, opening *domain.ChestOpening) error {
	if opening.ID == uuid.Nil {
		opening.ID = uuid.New()
	}
	if opening.OpenedAt.IsZero() {
		opening.OpenedAt = time.Now().UTC()
	}

	stored := *opening
	stored.Items = append([]string(nil), opening.Items...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.openings[opening.SessionID] = append(r.openings[opening.SessionID], stored)
	return nil
}

// ListOpenings returns up to limit openings, newest first
func (r *DropHistory) ListOpenings(_ context.Context, sessionID uuid.UUID, limit int) ([]domain.ChestOpening, error) {
	limit = repository.ClampLimit(limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.openings[sessionID]
	n := min(limit, len(all))
	out := make([]domain.ChestOpening, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		o := all[i]
		o.Items = append([]string(nil), o.Items...)
		out = append(out, o)
	}
	return out, nil
}

// CountByRarity aggregates item counts across the session's openings
func (r *DropHistory) CountByRarity(_ context.Context, sessionID uuid.UUID) ([]domain.RarityCount, error) {
	r.mu.RLock()
	counts := make(map[string]int)
	for _, o := range r.openings[sessionID] {
		for _, item := range o.Items {
			counts[item]++
		}
	}
	r.mu.RUnlock()

	out := make([]domain.RarityCount, 0, len(counts))
	for rarity, count := range counts {
		out = append(out, domain.RarityCount{Rarity: rarity, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Rarity < out[j].Rarity
	})
	return out, nil
}

// DeleteSession forgets every opening of the session
func (r *DropHistory) DeleteSession(_ context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.openings, sessionID)
	return nil
}
