package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootDrop_Go/internal/domain"
)

// MockDropHistory is a mock implementation of the DropHistory interface
type MockDropHistory struct {
	mock.Mock
}

func (m *MockDropHistory) RecordOpening(ctx context.Context, opening *domain.ChestOpening) error {
	args := m.Called(ctx, opening)
	return args.Error(0)
}

func (m *MockDropHistory) ListOpenings(ctx context.Context, sessionID uuid.UUID, limit int) ([]domain.ChestOpening, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChestOpening), args.Error(1)
}

func (m *MockDropHistory) CountByRarity(ctx context.Context, sessionID uuid.UUID) ([]domain.RarityCount, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RarityCount), args.Error(1)
}

func (m *MockDropHistory) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
