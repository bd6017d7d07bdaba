package simulator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/lootbox"
	"github.com/osse101/LootDrop_Go/internal/lootpool"
	"github.com/osse101/LootDrop_Go/internal/repository"
	"github.com/osse101/LootDrop_Go/internal/repository/memory"
	"github.com/osse101/LootDrop_Go/internal/session"
	"github.com/osse101/LootDrop_Go/internal/validation"
)

func newTestService(t *testing.T, history repository.DropHistory, catalogPath string) Service {
	t.Helper()
	sessions, err := session.NewManager(lootpool.DefaultCatalog(), domain.PoolRarity, 16, time.Minute,
		lootbox.WithSource(lootbox.NewSeededSource(7)))
	require.NoError(t, err)
	return NewService(sessions, history, validation.NewSchemaValidator(), catalogPath)
}

func intPtr(v int) *int { return &v }

func TestService_Chances(t *testing.T) {
	svc := newTestService(t, memory.NewDropHistory(), "")

	chances, err := svc.Chances(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 60.0, chances[domain.RarityCommon], 1e-9)
	assert.InDelta(t, 0.1, chances[domain.RarityMythic], 1e-9)
	assert.Len(t, chances, 6)
}

func TestService_ChestTypes(t *testing.T) {
	svc := newTestService(t, memory.NewDropHistory(), "")

	chests, err := svc.ChestTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, chests, 4)

	types := make([]string, len(chests))
	for i, c := range chests {
		types[i] = c.Type
	}
	assert.Equal(t, []string{"epic", "mythic", "normal", "rare"}, types)

	epic := chests[0]
	assert.Equal(t, 3, epic.MaxRolls)
	assert.Equal(t, []string{"common", "rare", "uncommon"}, epic.ExcludeRarities)
	assert.Equal(t, 150, epic.WeightOverrides[domain.RarityLegendary])
}

func TestService_OpenChest(t *testing.T) {
	ctx := context.Background()
	history := memory.NewDropHistory()
	svc := newTestService(t, history, "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	opening, err := svc.OpenChest(ctx, info.ID, OpenRequest{})
	require.NoError(t, err)

	assert.Equal(t, info.ID, opening.SessionID)
	assert.Equal(t, domain.ChestNormal, opening.ChestType)
	assert.Equal(t, 1.0, opening.Multiplier)
	assert.Equal(t, 1.0, opening.RarityBoost)
	assert.NotEmpty(t, opening.Items)
	assert.LessOrEqual(t, len(opening.Items), domain.DefaultMaxRolls)
	// the full default pool never produces an empty draw
	assert.Equal(t, int64(len(opening.Items)), opening.RollCount)

	snap, err := svc.GetStats(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Opens)
	assert.Equal(t, len(opening.Items), snap.ItemsDropped)
	assert.Equal(t, opening.RollCount, snap.RollCount)

	hist, err := svc.History(ctx, info.ID, 10)
	require.NoError(t, err)
	require.Len(t, hist.Openings, 1)
	assert.Equal(t, opening.ID, hist.Openings[0].ID)
	assert.NotEmpty(t, hist.Counts)
}

func TestService_OpenChestMaxZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	opening, err := svc.OpenChest(ctx, info.ID, OpenRequest{Max: intPtr(0)})
	require.NoError(t, err)
	assert.Empty(t, opening.Items)
	assert.Zero(t, opening.RollCount)

	snap, err := svc.GetStats(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.EmptyOpens)
}

func TestService_OpenChestUnknownChestUsesNormal(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	opening, err := svc.OpenChest(ctx, info.ID, OpenRequest{ChestType: "golden"})
	require.NoError(t, err)
	assert.Equal(t, domain.ChestNormal, opening.ChestType)
}

func TestService_OpenChestEpicExcludesLowRarities(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		opening, err := svc.OpenChest(ctx, info.ID, OpenRequest{ChestType: domain.ChestEpic})
		require.NoError(t, err)
		for _, item := range opening.Items {
			assert.NotContains(t, []string{"common", "uncommon", "rare"}, item)
		}
	}
}

func TestService_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  OpenRequest
	}{
		{"negative multiplier", OpenRequest{Multiplier: -1}},
		{"boost below one", OpenRequest{RarityBoost: 0.5}},
		{"boost too large", OpenRequest{RarityBoost: MaxRarityBoost + 1}},
		{"negative max", OpenRequest{Max: intPtr(-1)}},
		{"max too large", OpenRequest{Max: intPtr(MaxRolls + 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.OpenChest(ctx, info.ID, tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err = svc.Roll(ctx, info.ID, "", 0.25)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")
	id := uuid.New()

	_, err := svc.OpenChest(ctx, id, OpenRequest{})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.Roll(ctx, id, "", 1)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.GetStats(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = svc.History(ctx, id, 5)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	assert.ErrorIs(t, svc.ResetSession(ctx, id), domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.EndSession(ctx, id), domain.ErrSessionNotFound)
}

func TestService_Roll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		res, err := svc.Roll(ctx, info.ID, "", 1)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.NotEmpty(t, res.Item)
		assert.Equal(t, int64(i), res.RollCount)
	}

	res, err := svc.Roll(ctx, info.ID, domain.ChestMythic, 2)
	require.NoError(t, err)
	assert.Contains(t, []string{domain.RarityLegendary, domain.RarityMythic}, res.Item)
}

func TestService_HistoryWriteFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	history := new(repository.MockDropHistory)
	history.On("RecordOpening", mock.Anything, mock.AnythingOfType("*domain.ChestOpening")).
		Return(errors.New("disk full"))
	svc := newTestService(t, history, "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	opening, err := svc.OpenChest(ctx, info.ID, OpenRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, opening.Items)
	history.AssertExpectations(t)
}

func TestService_HistoryReadFailure(t *testing.T) {
	ctx := context.Background()
	history := new(repository.MockDropHistory)
	svc := newTestService(t, history, "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	history.On("ListOpenings", mock.Anything, info.ID, 5).Return(nil, errors.New("connection refused"))

	_, err = svc.History(ctx, info.ID, 5)
	assert.Error(t, err)
}

func TestService_ResetSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	_, err = svc.OpenChest(ctx, info.ID, OpenRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.ResetSession(ctx, info.ID))

	snap, err := svc.GetStats(ctx, info.ID)
	require.NoError(t, err)
	assert.Zero(t, snap.Opens)
	assert.Zero(t, snap.RollCount)

	hist, err := svc.History(ctx, info.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, hist.Openings)
}

func TestService_EndSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, memory.NewDropHistory(), "")

	info, err := svc.CreateSession(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.EndSession(ctx, info.ID))

	_, err = svc.GetStats(ctx, info.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

const halfMythicCatalog = `version: "1.0"
pools:
  - name: rarity
    entries:
      - name: common
        weight: 5000
      - name: mythic
        weight: 5000
`

func TestService_ReloadCatalog(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	good := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(good, []byte(halfMythicCatalog), 0o600))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: \"1.0\"\npools:\n  - name: rarity\n    entries:\n      - name: common\n        weight: 10001\n"), 0o600))

	t.Run("no path configured", func(t *testing.T) {
		svc := newTestService(t, memory.NewDropHistory(), "")
		_, err := svc.ReloadCatalog(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid catalog keeps current one", func(t *testing.T) {
		svc := newTestService(t, memory.NewDropHistory(), bad)
		_, err := svc.ReloadCatalog(ctx, "")
		assert.ErrorIs(t, err, domain.ErrConfiguration)

		chances, err := svc.Chances(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 60.0, chances[domain.RarityCommon], 1e-9)
	})

	t.Run("swaps pools into live sessions", func(t *testing.T) {
		svc := newTestService(t, memory.NewDropHistory(), "")
		info, err := svc.CreateSession(ctx)
		require.NoError(t, err)

		pools, err := svc.ReloadCatalog(ctx, good)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.PoolRarity}, pools)

		chances, err := svc.Chances(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, chances[domain.RarityMythic], 1e-9)

		opening, err := svc.OpenChest(ctx, info.ID, OpenRequest{})
		require.NoError(t, err)
		for _, item := range opening.Items {
			assert.Contains(t, []string{domain.RarityCommon, domain.RarityMythic}, item)
		}
	})
}
