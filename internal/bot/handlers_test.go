package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func chatMessage(chatType, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 1, Type: chatType},
	}
}

func commandMessage(chatType, command string) *tgbotapi.Message {
	msg := chatMessage(chatType, command)
	msg.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(command)},
	}
	return msg
}

func TestClassifyMessage(t *testing.T) {
	cases := []struct {
		name string
		msg  *tgbotapi.Message
		want messageAction
	}{
		{"Start In Private", commandMessage("private", "/start"), actionStart},
		{"Index In Private", commandMessage("private", "/index"), actionIndex},
		{"Unknown Command", commandMessage("private", "/restart"), actionNone},
		{"Command In Group Is Ignored", commandMessage("group", "/index"), actionNone},
		{"Text In Private", chatMessage("private", "report"), actionSearch},
		{"Text In Group", chatMessage("group", "report"), actionSearch},
		{"Text In Supergroup", chatMessage("supergroup", "report"), actionSearch},
		{"Blank Text", chatMessage("private", "   "), actionNone},
		{"Text In Channel Is Ignored", chatMessage("channel", "report"), actionNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyMessage(tc.msg))
		})
	}
}
