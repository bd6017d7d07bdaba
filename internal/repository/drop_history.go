package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/LootDrop_Go/internal/domain"
)

// History listing bounds shared by every DropHistory implementation
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// DropHistory defines the interface for chest opening persistence
type DropHistory interface {
	RecordOpening(ctx context.Context, opening *domain.ChestOpening) error
	// ListOpenings returns the newest openings first.
	ListOpenings(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.ChestOpening, error)
	// CountByRarity aggregates every item dropped in the session, most common first.
	CountByRarity(ctx context.Context, sessionID uuid.UUID) ([]domain.RarityCount, error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

// ClampLimit maps a caller supplied limit onto [1, MaxHistoryLimit].
// Zero or negative means DefaultHistoryLimit.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
