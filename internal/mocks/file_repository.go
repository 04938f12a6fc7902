package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filebot/internal/domain"
)

type FileRepository struct {
	mock.Mock
}

func (m *FileRepository) Create(ctx context.Context, file *domain.FileRecord) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *FileRepository) Exists(ctx context.Context, fileID string) (bool, error) {
	args := m.Called(ctx, fileID)
	return args.Bool(0), args.Error(1)
}

func (m *FileRepository) GetByFileID(ctx context.Context, fileID string) (*domain.FileRecord, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FileRecord), args.Error(1)
}

func (m *FileRepository) SearchByName(ctx context.Context, pattern string, limit int) ([]domain.FileRecord, error) {
	args := m.Called(ctx, pattern, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FileRecord), args.Error(1)
}

func (m *FileRepository) CountByName(ctx context.Context, pattern string) (int64, error) {
	args := m.Called(ctx, pattern)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
