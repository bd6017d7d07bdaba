package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/repository"
)

const insertOpening = `
INSERT INTO chest_openings (opening_id, session_id, chest_type, items, multiplier, rarity_boost, roll_count, opened_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listOpenings = `
SELECT opening_id, session_id, chest_type, items, multiplier, rarity_boost, roll_count, opened_at
FROM chest_openings
WHERE session_id = $1
ORDER BY opened_at DESC, opening_id
LIMIT $2`

const countByRarity = `
SELECT item, COUNT(*)
FROM chest_openings, unnest(items) AS item
WHERE session_id = $1
GROUP BY item
ORDER BY COUNT(*) DESC, item ASC`

const deleteSession = `DELETE FROM chest_openings WHERE session_id = $1`

// DropHistoryRepository implements repository.DropHistory for PostgreSQL
type DropHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewDropHistoryRepository creates a new DropHistoryRepository
func NewDropHistoryRepository(pool *pgxpool.Pool) repository.DropHistory {
	return &DropHistoryRepository{pool: pool}
}

// RecordOpening inserts a chest opening, assigning an ID and timestamp when missing
func (r *DropHistoryRepository) RecordOpening(ctx context.Context, opening *domain.ChestOpening) error {
	if opening.ID == uuid.Nil {
		opening.ID = uuid.New()
	}
	if opening.OpenedAt.IsZero() {
		opening.OpenedAt = time.Now().UTC()
	}

	items := opening.Items
	if items == nil {
		items = []string{}
	}

	_, err := r.pool.Exec(ctx, insertOpening,
		toPgUUID(opening.ID),
		toPgUUID(opening.SessionID),
		opening.ChestType,
		items,
		opening.Multiplier,
		opening.RarityBoost,
		opening.RollCount,
		pgtype.Timestamptz{Time: opening.OpenedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertOpening, err)
	}
	return nil
}

// ListOpenings returns the session's openings, newest first
func (r *DropHistoryRepository) ListOpenings(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.ChestOpening, error) {
	rows, err := r.pool.Query(ctx, listOpenings, toPgUUID(sessionID), repository.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOpenings, err)
	}

	openings, err := pgx.CollectRows(rows, scanOpening)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanOpening, err)
	}
	return openings, nil
}

// CountByRarity aggregates item counts across the session's openings
func (r *DropHistoryRepository) CountByRarity(ctx context.Context, sessionID uuid.UUID) ([]domain.RarityCount, error) {
	rows, err := r.pool.Query(ctx, countByRarity, toPgUUID(sessionID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountRarities, err)
	}

	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RarityCount, error) {
		var rc domain.RarityCount
		var count int64
		if err := row.Scan(&rc.Rarity, &count); err != nil {
			return rc, err
		}
		rc.Count = int(count)
		return rc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCountRarities, err)
	}
	return counts, nil
}

// DeleteSession removes every opening of the session
func (r *DropHistoryRepository) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, deleteSession, toPgUUID(sessionID)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteOpenings, err)
	}
	return nil
}

func scanOpening(row pgx.CollectableRow) (domain.ChestOpening, error) {
	var (
		o         domain.ChestOpening
		id        pgtype.UUID
		sessionID pgtype.UUID
		openedAt  pgtype.Timestamptz
	)
	err := row.Scan(&id, &sessionID, &o.ChestType, &o.Items, &o.Multiplier, &o.RarityBoost, &o.RollCount, &openedAt)
	if err != nil {
		return o, err
	}
	o.ID = uuid.UUID(id.Bytes)
	o.SessionID = uuid.UUID(sessionID.Bytes)
	o.OpenedAt = openedAt.Time
	return o, nil
}

func toPgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}
