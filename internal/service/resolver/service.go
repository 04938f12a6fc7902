package resolver

import (
	"context"
	"errors"
	"fmt"
	"log"

	"filebot/internal/domain"
	"filebot/internal/repository"
)

// Deliverer hands a resolved file to the chat platform. Delivery failures
// are reported back for logging only; they never abort resolution of other
// requests.
type Deliverer interface {
	DeliverDocument(ctx context.Context, recipientID int64, fileID, caption string) error
}

type Service interface {
	Resolve(ctx context.Context, recipientID int64, token Token) domain.ResolveOutcome
}

type service struct {
	fileRepo  repository.FileRepository
	deliverer Deliverer
}

func NewService(fileRepo repository.FileRepository, deliverer Deliverer) Service {
	return &service{
		fileRepo:  fileRepo,
		deliverer: deliverer,
	}
}

// Resolve looks the selection up by file_id alone — the decoded name is
// never used for re-querying — and hands the stored file to the deliverer.
func (s *service) Resolve(ctx context.Context, recipientID int64, token Token) domain.ResolveOutcome {
	record, err := s.fileRepo.GetByFileID(ctx, token.FileID)
	if errors.Is(err, domain.ErrFileNotFound) {
		// Expected when the store and live buttons have diverged.
		return domain.ResolveOutcome{Kind: domain.ResolveNotFound, FileName: token.FileName}
	}
	if err != nil {
		// No delivery was attempted; keep the failure distinct from a
		// send failure so the reported line matches what happened.
		log.Printf("Error resolving file %s: %v", token.FileID, err)
		return domain.ResolveOutcome{Kind: domain.ResolveLookupFailed, FileName: token.FileName, Detail: err.Error()}
	}

	caption := ComposeCaption(record.Caption, token.FileName)
	if err := s.deliverer.DeliverDocument(ctx, recipientID, record.FileID, caption); err != nil {
		log.Printf("Error sending file %s: %v", record.FileID, err)
		return domain.ResolveOutcome{Kind: domain.ResolveDeliveryFailed, FileName: token.FileName, Detail: err.Error()}
	}

	return domain.ResolveOutcome{Kind: domain.ResolveDelivered, FileName: token.FileName}
}

// ComposeCaption appends the file name line to the stored caption, or uses
// it alone when the caption is empty.
func ComposeCaption(caption, fileName string) string {
	if caption == "" {
		return fmt.Sprintf("File: %s", fileName)
	}
	return fmt.Sprintf("%s\n\nFile: %s", caption, fileName)
}
