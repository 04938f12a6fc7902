package bot

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"filebot/internal/config"
	"filebot/internal/service"
	"filebot/internal/telegram"
)

const handlerTimeout = 30 * time.Second

// Bot drives the update loop. Handlers are stateless; every update is served
// by its own goroutine so a slow search cannot block channel-post tracking,
// and a recover guard keeps one bad update from taking the dispatcher down.
type Bot struct {
	api      *tgbotapi.BotAPI
	client   *telegram.Client
	services *service.Services
	cfg      *config.Config
}

func New(api *tgbotapi.BotAPI, client *telegram.Client, services *service.Services, cfg *config.Config) *Bot {
	return &Bot{
		api:      api,
		client:   client,
		services: services,
		cfg:      cfg,
	}
}

func (b *Bot) Run(ctx context.Context) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := b.api.GetUpdatesChan(updateConfig)
	log.Println("Bot is running...")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Println("Bot stopped.")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.handleUpdate(update)
		}
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from handler panic: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	switch {
	case update.ChannelPost != nil:
		if update.ChannelPost.Chat.ID == b.cfg.ChannelID {
			b.client.ObserveChannelPost(update.ChannelPost)
		}
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send reply: %v", err)
	}
}
