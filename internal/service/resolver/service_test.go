package resolver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"filebot/internal/domain"
	"filebot/internal/mocks"
	"filebot/internal/service/resolver"
)

type mockDeliverer struct {
	mock.Mock
}

func (m *mockDeliverer) DeliverDocument(ctx context.Context, recipientID int64, fileID, caption string) error {
	args := m.Called(ctx, recipientID, fileID, caption)
	return args.Error(0)
}

func TestResolve_DeliversWithComposedCaption(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	mockDel := new(mockDeliverer)
	svc := resolver.NewService(mockRepo, mockDel)
	ctx := context.Background()

	record := &domain.FileRecord{FileID: "F1", FileName: "video.mp4", Caption: "hello"}
	mockRepo.On("GetByFileID", ctx, "F1").Return(record, nil).Once()
	mockDel.On("DeliverDocument", ctx, int64(777), "F1", "hello\n\nFile: video.mp4").Return(nil).Once()

	token, err := resolver.DecodeToken("file:F1:video.mp4")
	assert.NoError(t, err)

	outcome := svc.Resolve(ctx, 777, token)

	assert.Equal(t, domain.ResolveDelivered, outcome.Kind)
	assert.Equal(t, "File sent!", outcome.Message())
	mockRepo.AssertExpectations(t)
	mockDel.AssertExpectations(t)
}

func TestResolve_EmptyCaptionUsesNameAlone(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	mockDel := new(mockDeliverer)
	svc := resolver.NewService(mockRepo, mockDel)
	ctx := context.Background()

	record := &domain.FileRecord{FileID: "F1", FileName: "video.mp4", Caption: ""}
	mockRepo.On("GetByFileID", ctx, "F1").Return(record, nil).Once()
	mockDel.On("DeliverDocument", ctx, int64(777), "F1", "File: video.mp4").Return(nil).Once()

	outcome := svc.Resolve(ctx, 777, resolver.Token{Kind: resolver.TokenFile, FileID: "F1", FileName: "video.mp4"})

	assert.Equal(t, domain.ResolveDelivered, outcome.Kind)
	mockDel.AssertExpectations(t)
}

func TestResolve_MissingRecordSkipsDelivery(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	mockDel := new(mockDeliverer)
	svc := resolver.NewService(mockRepo, mockDel)
	ctx := context.Background()

	mockRepo.On("GetByFileID", ctx, "F9").Return(nil, domain.ErrFileNotFound).Once()

	token, err := resolver.DecodeToken("file:F9:ghost.mp4")
	assert.NoError(t, err)

	outcome := svc.Resolve(ctx, 777, token)

	assert.Equal(t, domain.ResolveNotFound, outcome.Kind)
	assert.Equal(t, "File not found in database!", outcome.Message())
	mockDel.AssertNotCalled(t, "DeliverDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_LookupFailureSkipsDelivery(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	mockDel := new(mockDeliverer)
	svc := resolver.NewService(mockRepo, mockDel)
	ctx := context.Background()

	mockRepo.On("GetByFileID", ctx, "F1").Return(nil, assert.AnError).Once()

	outcome := svc.Resolve(ctx, 777, resolver.Token{Kind: resolver.TokenFile, FileID: "F1", FileName: "video.mp4"})

	assert.Equal(t, domain.ResolveLookupFailed, outcome.Kind)
	assert.Contains(t, outcome.Message(), "Error looking up file")
	assert.NotContains(t, outcome.Message(), "Error sending file")
	mockDel.AssertNotCalled(t, "DeliverDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_DeliveryFailureIsReported(t *testing.T) {
	mockRepo := new(mocks.FileRepository)
	mockDel := new(mockDeliverer)
	svc := resolver.NewService(mockRepo, mockDel)
	ctx := context.Background()

	record := &domain.FileRecord{FileID: "F1", FileName: "video.mp4"}
	mockRepo.On("GetByFileID", ctx, "F1").Return(record, nil).Once()
	mockDel.On("DeliverDocument", ctx, int64(777), "F1", mock.Anything).Return(assert.AnError).Once()

	outcome := svc.Resolve(ctx, 777, resolver.Token{Kind: resolver.TokenFile, FileID: "F1", FileName: "video.mp4"})

	assert.Equal(t, domain.ResolveDeliveryFailed, outcome.Kind)
	assert.Contains(t, outcome.Message(), "Error sending file")
}

func TestComposeCaption(t *testing.T) {
	assert.Equal(t, "File: a.pdf", resolver.ComposeCaption("", "a.pdf"))
	assert.Equal(t, "notes\n\nFile: a.pdf", resolver.ComposeCaption("notes", "a.pdf"))
}
