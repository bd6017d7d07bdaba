package simulator

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/logger"
	"github.com/osse101/LootDrop_Go/internal/lootbox"
	"github.com/osse101/LootDrop_Go/internal/lootpool"
	"github.com/osse101/LootDrop_Go/internal/metrics"
	"github.com/osse101/LootDrop_Go/internal/repository"
	"github.com/osse101/LootDrop_Go/internal/session"
	"github.com/osse101/LootDrop_Go/internal/stats"
	"github.com/osse101/LootDrop_Go/internal/validation"
)

// OpenRequest describes one chest opening. Zero Multiplier and RarityBoost
// mean 1. A nil Max uses the chest's MaxRolls.
type OpenRequest struct {
	ChestType   string
	Max         *int
	Multiplier  float64
	RarityBoost float64
}

// RollResult is the outcome of a single draw.
type RollResult struct {
	SessionID uuid.UUID `json:"session_id"`
	ChestType string    `json:"chest_type"`
	Item      string    `json:"item,omitempty"`
	Found     bool      `json:"found"`
	RollCount int64     `json:"roll_count"`
}

// SessionInfo describes a newly created session.
type SessionInfo struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// ChestInfo describes one configured chest type.
type ChestInfo struct {
	Type            string         `json:"type"`
	MaxRolls        int            `json:"max_rolls"`
	ExcludeRarities []string       `json:"exclude_rarities"`
	WeightOverrides map[string]int `json:"weight_overrides,omitempty"`
}

// History is a session's recent openings and its all-time drop counts.
type History struct {
	Openings []domain.ChestOpening `json:"openings"`
	Counts   []domain.RarityCount  `json:"counts"`
}

// Service defines the loot simulator operations
type Service interface {
	Chances(ctx context.Context) (map[string]float64, error)
	ChestTypes(ctx context.Context) ([]ChestInfo, error)
	CreateSession(ctx context.Context) (*SessionInfo, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error
	OpenChest(ctx context.Context, sessionID uuid.UUID, req OpenRequest) (*domain.ChestOpening, error)
	Roll(ctx context.Context, sessionID uuid.UUID, chestType string, rarityBoost float64) (*RollResult, error)
	GetStats(ctx context.Context, sessionID uuid.UUID) (*stats.Snapshot, error)
	ResetSession(ctx context.Context, sessionID uuid.UUID) error
	History(ctx context.Context, sessionID uuid.UUID, limit int) (*History, error)
	ReloadCatalog(ctx context.Context, path string) ([]string, error)
}

type service struct {
	sessions    *session.Manager
	history     repository.DropHistory
	validator   validation.SchemaValidator
	catalogPath string
	now         func() time.Time
}

// NewService creates a new simulator service.
// catalogPath is the file ReloadCatalog reads when called without a path.
func NewService(sessions *session.Manager, history repository.DropHistory, validator validation.SchemaValidator, catalogPath string) Service {
	return &service{
		sessions:    sessions,
		history:     history,
		validator:   validator,
		catalogPath: catalogPath,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Chances(_ context.Context) (map[string]float64, error) {
	roller, err := lootbox.NewRollerFromCatalog(s.sessions.Catalog(), s.sessions.PoolName())
	if err != nil {
		return nil, err
	}
	return roller.GetLootChances(), nil
}

func (s *service) ChestTypes(_ context.Context) ([]ChestInfo, error) {
	cat := s.sessions.Catalog()

	var out []ChestInfo
	for _, name := range cat.ChestTypes() {
		chest, _ := cat.Chest(name)

		excluded := make([]string, 0, len(chest.ExcludeRarities))
		for rarity, on := range chest.ExcludeRarities {
			if on {
				excluded = append(excluded, rarity)
			}
		}
		sort.Strings(excluded)

		out = append(out, ChestInfo{
			Type:            name,
			MaxRolls:        chest.MaxRolls,
			ExcludeRarities: excluded,
			WeightOverrides: chest.WeightOverrides,
		})
	}
	return out, nil
}

func (s *service) CreateSession(ctx context.Context) (*SessionInfo, error) {
	sess, err := s.sessions.Create()
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgSessionCreated, LogFieldSessionID, sess.ID)
	return &SessionInfo{ID: sess.ID, CreatedAt: sess.CreatedAt}, nil
}

func (s *service) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return err
	}
	s.sessions.Delete(sessionID)
	logger.FromContext(ctx).Info(LogMsgSessionEnded, LogFieldSessionID, sessionID)
	return nil
}

func (s *service) OpenChest(ctx context.Context, sessionID uuid.UUID, req OpenRequest) (*domain.ChestOpening, error) {
	if err := normalizeOpenRequest(&req); err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	chestType := s.resolveChestType(ctx, sess, req.ChestType)

	batch := sess.Roller.OpenChest(lootbox.LootsOptions{
		Max:         req.Max,
		ChestType:   chestType,
		Multiplier:  req.Multiplier,
		RarityBoost: req.RarityBoost,
	})
	sess.Stats.Record(chestType, batch.Items)
	metrics.RecordOpening(chestType, batch.Draws, batch.Items)

	opening := &domain.ChestOpening{
		ID:          uuid.New(),
		SessionID:   sess.ID,
		ChestType:   chestType,
		Items:       batch.Items,
		Multiplier:  req.Multiplier,
		RarityBoost: req.RarityBoost,
		RollCount:   sess.Roller.GetRollCount(),
		OpenedAt:    s.now(),
	}

	if err := s.history.RecordOpening(ctx, opening); err != nil {
		metrics.HistoryErrors.Inc()
		log.Error(LogMsgHistoryWriteFailed, LogFieldSessionID, sess.ID, LogFieldError, err)
	}

	log.Debug(LogMsgChestOpened,
		LogFieldSessionID, sess.ID,
		LogFieldChestType, chestType,
		LogFieldDraws, batch.Draws,
		LogFieldItems, batch.Items,
		LogFieldRollCount, opening.RollCount)

	return opening, nil
}

func (s *service) Roll(ctx context.Context, sessionID uuid.UUID, chestType string, rarityBoost float64) (*RollResult, error) {
	boost, err := normalizeBoost(rarityBoost)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	chestType = s.resolveChestType(ctx, sess, chestType)
	item, ok := sess.Roller.GetLoot(chestType, boost)
	metrics.RecordDraw(chestType, item, ok)

	var drops []string
	if ok {
		drops = []string{item}
	}
	sess.Stats.Record(chestType, drops)

	result := &RollResult{
		SessionID: sess.ID,
		ChestType: chestType,
		Item:      item,
		Found:     ok,
		RollCount: sess.Roller.GetRollCount(),
	}
	logger.FromContext(ctx).Debug(LogMsgLootRolled,
		LogFieldSessionID, sess.ID,
		LogFieldChestType, chestType,
		LogFieldItem, item,
		LogFieldRollCount, result.RollCount)
	return result, nil
}

func (s *service) GetStats(_ context.Context, sessionID uuid.UUID) (*stats.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.Stats.Snapshot()
	snap.RollCount = sess.Roller.GetRollCount()
	return &snap, nil
}

func (s *service) ResetSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.sessions.Reset(sessionID); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	if err := s.history.DeleteSession(ctx, sessionID); err != nil {
		metrics.HistoryErrors.Inc()
		log.Error(LogMsgHistoryDeleteFailed, LogFieldSessionID, sessionID, LogFieldError, err)
	}
	log.Info(LogMsgSessionReset, LogFieldSessionID, sessionID)
	return nil
}

func (s *service) History(ctx context.Context, sessionID uuid.UUID, limit int) (*History, error) {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, err
	}

	openings, err := s.history.ListOpenings(ctx, sessionID, limit)
	if err != nil {
		return nil, err
	}
	counts, err := s.history.CountByRarity(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &History{Openings: openings, Counts: counts}, nil
}

// ReloadCatalog loads and validates the catalog at path, then swaps it into
// every live session. Any error leaves the current catalog active.
func (s *service) ReloadCatalog(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		path = s.catalogPath
	}
	if path == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextNoCatalog)
	}

	log := logger.FromContext(ctx)

	cat, err := lootpool.LoadFile(path, s.validator)
	if err == nil {
		err = s.sessions.SetCatalog(cat)
	}
	if err != nil {
		metrics.CatalogReloads.WithLabelValues(metrics.ResultFailure).Inc()
		log.Warn(LogMsgCatalogReloadFailed, LogFieldPath, path, LogFieldError, err)
		return nil, err
	}

	metrics.CatalogReloads.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgCatalogReloaded, LogFieldPath, path, LogFieldPools, cat.PoolNames())
	return cat.PoolNames(), nil
}

// resolveChestType maps "" and unknown chest types to the default chest so
// stats, metrics and history all see the chest that was actually rolled.
func (s *service) resolveChestType(ctx context.Context, sess *session.Session, chestType string) string {
	if chestType == "" {
		return domain.DefaultChestType
	}
	if !sess.Roller.HasChest(chestType) {
		logger.FromContext(ctx).Warn(LogMsgUnknownChest, LogFieldRequested, chestType)
		return domain.DefaultChestType
	}
	return chestType
}

func normalizeOpenRequest(req *OpenRequest) error {
	if req.Multiplier == 0 {
		req.Multiplier = DefaultMultiplier
	}
	if req.Multiplier < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextMultiplier)
	}
	if req.Max != nil && (*req.Max < 0 || *req.Max > MaxRolls) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextMaxRolls)
	}

	boost, err := normalizeBoost(req.RarityBoost)
	if err != nil {
		return err
	}
	req.RarityBoost = boost
	return nil
}

func normalizeBoost(boost float64) (float64, error) {
	if boost == 0 {
		return DefaultRarityBoost, nil
	}
	if boost < 1 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextRarityBoost)
	}
	if boost > MaxRarityBoost {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextBoostTooBig)
	}
	return boost, nil
}
