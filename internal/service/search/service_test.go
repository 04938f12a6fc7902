package search_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"filebot/internal/domain"
	"filebot/internal/mocks"
	"filebot/internal/service/search"
)

func TestSearch_EmptyQueryShortCircuits(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	svc := search.NewService(mockRepo, nil)
	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t\n"} {
		result, err := svc.Search(ctx, query)

		assert.NoError(t, err)
		assert.Empty(t, result.Matches)
		assert.Equal(t, int64(0), result.Total)
	}

	mockRepo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "CountByName", mock.Anything, mock.Anything)
}

func TestSearch_EmptyStore(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	svc := search.NewService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("SearchByName", ctx, "x", search.PageSize).Return([]domain.FileRecord{}, nil).Once()
	mockRepo.On("CountByName", ctx, "x").Return(int64(0), nil).Once()

	result, err := svc.Search(ctx, "x")

	assert.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Equal(t, int64(0), result.Total)
	mockRepo.AssertExpectations(t)
}

func TestSearch_PageIsBoundedAndTotalIsIndependent(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	svc := search.NewService(mockRepo, nil)
	ctx := context.Background()

	// 12 records match "cat"; the repository honors the limit, the count
	// does not.
	page := make([]domain.FileRecord, 0, search.PageSize)
	for i := 0; i < search.PageSize; i++ {
		page = append(page, domain.FileRecord{
			FileID:   fmt.Sprintf("F%d", i),
			FileName: fmt.Sprintf("cat-%d.mp4", i),
		})
	}
	mockRepo.On("SearchByName", ctx, "cat", search.PageSize).Return(page, nil).Once()
	mockRepo.On("CountByName", ctx, "cat").Return(int64(12), nil).Once()

	result, err := svc.Search(ctx, "cat")

	assert.NoError(t, err)
	assert.Len(t, result.Matches, search.PageSize)
	assert.Equal(t, int64(12), result.Total)
	assert.GreaterOrEqual(t, result.Total, int64(len(result.Matches)))
	mockRepo.AssertExpectations(t)
}

func TestSearch_TrimsQueryAndMapsFields(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	svc := search.NewService(mockRepo, nil)
	ctx := context.Background()

	records := []domain.FileRecord{{
		ID:       1,
		FileID:   "F1",
		FileName: "Report.PDF",
		Caption:  "quarterly numbers",
	}}
	mockRepo.On("SearchByName", ctx, "report", search.PageSize).Return(records, nil).Once()
	mockRepo.On("CountByName", ctx, "report").Return(int64(1), nil).Once()

	result, err := svc.Search(ctx, "  report  ")

	assert.NoError(t, err)
	assert.Equal(t, []domain.FileMatch{{
		FileID:   "F1",
		FileName: "Report.PDF",
		Caption:  "quarterly numbers",
	}}, result.Matches)
	mockRepo.AssertExpectations(t)
}

func TestSearch_RepoErrorPropagates(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	svc := search.NewService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("SearchByName", ctx, "cat", search.PageSize).Return(nil, assert.AnError).Once()

	_, err := svc.Search(ctx, "cat")

	assert.Error(t, err)
}

func TestInvalidateCache_NoRedisIsNoop(t *testing.T) {
	svc := search.NewService(new(mocks.FileRepository), nil)

	assert.NoError(t, svc.InvalidateCache(context.Background()))
}
