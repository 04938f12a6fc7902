package alert

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/resend/resend-go/v3"

	"filebot/internal/config"
	"filebot/internal/domain"
)

// Service emails the operator when indexing fails in a way only they can
// fix (bot not promoted, bot not added, channel misconfigured).
type Service interface {
	SourceAccessAlert(ctx context.Context, outcome domain.IndexOutcome) error
}

type service struct {
	client *resend.Client
	cfg    *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

func (s *service) SourceAccessAlert(ctx context.Context, outcome domain.IndexOutcome) error {
	if s.cfg.ResendAPIKey == "" || s.cfg.AlertEmail == "" {
		return nil
	}

	body := fmt.Sprintf(
		"<p>Indexing channel <strong>%d</strong> failed:</p><p>%s</p>",
		s.cfg.ChannelID, html.EscapeString(outcome.Message()),
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("File Bot <%s>", s.cfg.FromEmail),
		To:      []string{s.cfg.AlertEmail},
		Subject: "File Bot: channel access failure",
		Html:    body,
	}

	if _, err := s.client.Emails.Send(params); err != nil {
		log.Printf("Failed to send access alert: %v", err)
		return err
	}
	return nil
}
