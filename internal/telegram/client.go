package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"filebot/internal/domain"
)

// Client adapts the Bot API to the source and deliverer contracts the
// services depend on. The Bot API has no history call, so the client keeps
// the newest channel post it has observed per chat; the bot must be a
// channel admin to receive channel posts at all, which FetchRecent turns
// into an actionable failure when nothing has been observed yet.
type Client struct {
	api *tgbotapi.BotAPI

	mu     sync.RWMutex
	latest map[int64]domain.InboundMessage
}

func NewClient(api *tgbotapi.BotAPI) *Client {
	return &Client{
		api:    api,
		latest: make(map[int64]domain.InboundMessage),
	}
}

// ObserveChannelPost records a channel post delivered through the update
// stream. Only the newest post per chat is kept.
func (c *Client) ObserveChannelPost(msg *tgbotapi.Message) {
	if msg == nil {
		return
	}
	inbound := convertMessage(msg)

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.latest[inbound.ChatID]; ok && prev.ID >= inbound.ID {
		return
	}
	c.latest[inbound.ChatID] = inbound
}

// FetchRecent returns the most recent observed message of the chat (only one
// is retained, so limit never takes effect beyond that). With nothing
// observed it probes chat access to classify why: the caller needs "promote
// the bot" and "add the bot" to be distinguishable outcomes.
func (c *Client) FetchRecent(ctx context.Context, chatID int64, limit int) ([]domain.InboundMessage, error) {
	c.mu.RLock()
	msg, ok := c.latest[chatID]
	c.mu.RUnlock()

	if ok {
		return []domain.InboundMessage{msg}, nil
	}

	if err := c.probeAccess(chatID); err != nil {
		return nil, err
	}
	return nil, nil
}

// probeAccess asks the platform about the chat and the bot's own membership
// and maps failures onto the domain sentinels.
func (c *Client) probeAccess(chatID int64) error {
	if _, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	}); err != nil {
		return classifyAPIError(err)
	}

	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: c.api.Self.ID,
		},
	})
	if err != nil {
		return classifyAPIError(err)
	}

	switch member.Status {
	case "left", "kicked":
		return domain.ErrNotMember
	case "creator", "administrator":
		// Access is fine, there just has not been a post since startup.
		return nil
	default:
		// Plain members do not receive channel posts.
		return domain.ErrNeedAdmin
	}
}

// DeliverDocument sends a stored file to the recipient by its platform
// file_id, with a follow-up search button attached.
func (c *Client) DeliverDocument(ctx context.Context, recipientID int64, fileID, caption string) error {
	doc := tgbotapi.NewDocument(recipientID, tgbotapi.FileID(fileID))
	doc.Caption = caption
	doc.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Search More", "more"),
		),
	)
	_, err := c.api.Send(doc)
	return err
}

func convertMessage(msg *tgbotapi.Message) domain.InboundMessage {
	inbound := domain.InboundMessage{
		ID:      int64(msg.MessageID),
		ChatID:  msg.Chat.ID,
		Caption: msg.Caption,
	}

	if msg.Document != nil {
		inbound.Document = &domain.Attachment{FileID: msg.Document.FileID, FileName: msg.Document.FileName}
	}
	if msg.Video != nil {
		inbound.Video = &domain.Attachment{FileID: msg.Video.FileID, FileName: msg.Video.FileName}
	}
	if msg.Audio != nil {
		inbound.Audio = &domain.Attachment{FileID: msg.Audio.FileID, FileName: msg.Audio.FileName}
	}
	if len(msg.Photo) > 0 {
		// Largest size last; photos carry no name in the protocol.
		inbound.Photo = &domain.Attachment{FileID: msg.Photo[len(msg.Photo)-1].FileID}
	}

	return inbound
}
