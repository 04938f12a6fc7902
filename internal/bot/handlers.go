package bot

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"filebot/internal/domain"
	"filebot/internal/service/resolver"
)

const helpText = "Help: /start - Welcome, /index - Index last file. Search file names directly."

type messageAction int

const (
	actionNone messageAction = iota
	actionStart
	actionIndex
	actionSearch
)

// classifyMessage decides what an inbound chat message triggers. Commands
// are served in private chats only; plain-text search works in private and
// group chats alike.
func classifyMessage(msg *tgbotapi.Message) messageAction {
	if msg.IsCommand() {
		if !msg.Chat.IsPrivate() {
			return actionNone
		}
		switch msg.Command() {
		case "start":
			return actionStart
		case "index":
			return actionIndex
		}
		return actionNone
	}

	if strings.TrimSpace(msg.Text) == "" {
		return actionNone
	}
	if msg.Chat.IsPrivate() || msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		return actionSearch
	}
	return actionNone
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch classifyMessage(msg) {
	case actionStart:
		b.handleStart(msg.Chat.ID)
	case actionIndex:
		b.handleIndex(ctx, msg.Chat.ID)
	case actionSearch:
		b.handleSearch(ctx, msg.Chat.ID, strings.TrimSpace(msg.Text))
	}
}

func (b *Bot) handleStart(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Help", string(resolver.TokenHelp)),
		),
	)
	caption := "Welcome to File Bot! Use /index to index files. Search in groups."

	if photoURL := b.welcomePhotoURL(); photoURL != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
		photo.Caption = caption
		photo.ReplyMarkup = keyboard
		_, err := b.api.Send(photo)
		if err == nil {
			return
		}
		log.Printf("Failed to send welcome photo: %v", err)
	}

	text := tgbotapi.NewMessage(chatID, caption)
	text.ReplyMarkup = keyboard
	if _, err := b.api.Send(text); err != nil {
		log.Printf("Failed to send welcome message: %v", err)
	}
}

func (b *Bot) handleIndex(ctx context.Context, chatID int64) {
	outcome := b.services.Indexer.IndexLatest(ctx)

	if outcome.Kind == domain.IndexIndexed {
		if err := b.services.Search.InvalidateCache(ctx); err != nil {
			log.Printf("Failed to invalidate search cache: %v", err)
		}
	}
	if outcome.AccessDenied() {
		if err := b.services.Alert.SourceAccessAlert(ctx, outcome); err != nil {
			log.Printf("Failed to alert operator: %v", err)
		}
	}

	b.reply(chatID, outcome.Message())
}

func (b *Bot) handleSearch(ctx context.Context, chatID int64, query string) {
	result, err := b.services.Search.Search(ctx, query)
	if err != nil {
		log.Printf("Search failed for %q: %v", query, err)
		b.reply(chatID, "Error searching files, try again later.")
		return
	}
	if len(result.Matches) == 0 {
		b.reply(chatID, "No matching files found!")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, match := range result.Matches {
		token, err := resolver.EncodeFileToken(match)
		if err != nil {
			// Still searchable, just not deliverable via button.
			log.Printf("Skipping button for %s: %v", match.FileID, err)
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(match.FileName, token),
		))
	}
	if result.Total > int64(len(result.Matches)) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Show More", string(resolver.TokenMore)),
		))
	}

	msg := tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Found %d files for '%s' (showing %d):", result.Total, query, len(result.Matches)))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send search results: %v", err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	token, err := resolver.DecodeToken(cb.Data)
	if err != nil {
		b.answerCallback(cb.ID, "Unrecognized button.")
		return
	}

	chatID := int64(0)
	if cb.Message != nil {
		chatID = cb.Message.Chat.ID
	}

	switch token.Kind {
	case resolver.TokenHelp:
		if chatID != 0 {
			b.reply(chatID, helpText)
		}
		b.answerCallback(cb.ID, "")
	case resolver.TokenMore:
		if chatID != 0 {
			b.reply(chatID, "Type another file name to search!")
		}
		b.answerCallback(cb.ID, "")
	case resolver.TokenFile:
		outcome := b.services.Resolver.Resolve(ctx, cb.From.ID, token)
		if outcome.Kind != domain.ResolveDelivered && chatID != 0 {
			b.reply(chatID, outcome.Message())
		}
		if outcome.Kind == domain.ResolveDelivered {
			b.answerCallback(cb.ID, "File sent!")
		} else {
			b.answerCallback(cb.ID, "Error!")
		}
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (b *Bot) welcomePhotoURL() string {
	if b.cfg.WelcomePhotoObject == "" {
		return ""
	}
	scheme := "http"
	if b.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s",
		scheme, b.cfg.MinIOPublicEndpoint, b.cfg.MinIOBucket, url.PathEscape(b.cfg.WelcomePhotoObject))
}
