package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootDrop_Go/internal/domain"
	"github.com/osse101/LootDrop_Go/internal/simulator"
	"github.com/osse101/LootDrop_Go/internal/stats"
)

// MockSimulatorService mocks the simulator.Service interface
type MockSimulatorService struct {
	mock.Mock
}

func (m *MockSimulatorService) Chances(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockSimulatorService) ChestTypes(ctx context.Context) ([]simulator.ChestInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]simulator.ChestInfo), args.Error(1)
}

func (m *MockSimulatorService) CreateSession(ctx context.Context) (*simulator.SessionInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulator.SessionInfo), args.Error(1)
}

func (m *MockSimulatorService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSimulatorService) OpenChest(ctx context.Context, sessionID uuid.UUID, req simulator.OpenRequest) (*domain.ChestOpening, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChestOpening), args.Error(1)
}

func (m *MockSimulatorService) Roll(ctx context.Context, sessionID uuid.UUID, chestType string, rarityBoost float64) (*simulator.RollResult, error) {
	args := m.Called(ctx, sessionID, chestType, rarityBoost)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulator.RollResult), args.Error(1)
}

func (m *MockSimulatorService) GetStats(ctx context.Context, sessionID uuid.UUID) (*stats.Snapshot, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Snapshot), args.Error(1)
}

func (m *MockSimulatorService) ResetSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSimulatorService) History(ctx context.Context, sessionID uuid.UUID, limit int) (*simulator.History, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*simulator.History), args.Error(1)
}

func (m *MockSimulatorService) ReloadCatalog(ctx context.Context, path string) ([]string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
