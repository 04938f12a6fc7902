package indexer

import (
	"context"
	"errors"
	"log"

	"filebot/internal/domain"
	"filebot/internal/repository"
)

// Source is the channel the bot indexes from. FetchRecent returns the most
// recent message(s) of the source chat, newest first; access failures come
// back as the classified sentinels in domain.
type Source interface {
	FetchRecent(ctx context.Context, chatID int64, limit int) ([]domain.InboundMessage, error)
}

type Service interface {
	IndexLatest(ctx context.Context) domain.IndexOutcome
}

type service struct {
	fileRepo  repository.FileRepository
	source    Source
	channelID int64
}

func NewService(fileRepo repository.FileRepository, source Source, channelID int64) Service {
	return &service{
		fileRepo:  fileRepo,
		source:    source,
		channelID: channelID,
	}
}

// IndexLatest indexes the media attachment of the newest channel message.
// Every path returns an outcome value; nothing escapes to the dispatcher.
func (s *service) IndexLatest(ctx context.Context) domain.IndexOutcome {
	messages, err := s.source.FetchRecent(ctx, s.channelID, 1)
	if err != nil {
		return classifySourceError(err)
	}
	if len(messages) == 0 {
		return domain.IndexOutcome{Kind: domain.IndexNoMedia}
	}

	msg := messages[0]
	media := msg.Media()
	if media == nil {
		return domain.IndexOutcome{Kind: domain.IndexNoMedia}
	}

	// Fast path only; the unique constraint on file_id is what closes the
	// race between two concurrent index attempts.
	exists, err := s.fileRepo.Exists(ctx, media.FileID)
	if err != nil {
		return domain.IndexOutcome{Kind: domain.IndexStoreError, Detail: err.Error()}
	}
	if exists {
		return domain.IndexOutcome{Kind: domain.IndexAlreadyIndexed, FileName: media.FileName}
	}

	record := &domain.FileRecord{
		FileID:    media.FileID,
		FileName:  media.FileName,
		Caption:   msg.Caption,
		MessageID: msg.ID,
		ChatID:    s.channelID,
	}

	if err := s.fileRepo.Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrDuplicateFile) {
			return domain.IndexOutcome{Kind: domain.IndexAlreadyIndexed, FileName: media.FileName}
		}
		log.Printf("Unexpected error during indexing: %v", err)
		return domain.IndexOutcome{Kind: domain.IndexStoreError, Detail: err.Error()}
	}

	return domain.IndexOutcome{Kind: domain.IndexIndexed, FileName: media.FileName}
}

func classifySourceError(err error) domain.IndexOutcome {
	switch {
	case errors.Is(err, domain.ErrNeedAdmin):
		log.Println("Bot requires admin privileges in the channel.")
		return domain.IndexOutcome{Kind: domain.IndexNeedAdmin, Detail: err.Error()}
	case errors.Is(err, domain.ErrNotMember):
		log.Println("Bot is not a participant in the channel.")
		return domain.IndexOutcome{Kind: domain.IndexNotMember, Detail: err.Error()}
	case errors.Is(err, domain.ErrChannelUnavailable):
		log.Printf("Channel access error: %v", err)
		return domain.IndexOutcome{Kind: domain.IndexChannelUnavailable, Detail: err.Error()}
	default:
		log.Printf("Unexpected error during indexing: %v", err)
		return domain.IndexOutcome{Kind: domain.IndexSourceError, Detail: err.Error()}
	}
}
