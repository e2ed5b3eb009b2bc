package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botClient is the part of *tgbotapi.BotAPI the sender uses.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Sender delivers plain-text messages to Telegram chats.
type Sender struct {
	bot botClient
}

// NewSender connects to the Bot API with token.
func NewSender(token string, debug bool) (*Sender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	bot.Debug = debug
	slog.Info("Telegram bot authorized", "username", bot.Self.UserName)
	return &Sender{bot: bot}, nil
}

func (s *Sender) Send(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message to %d: %w", chatID, err)
	}
	return nil
}

// LogSender stands in when no bot token is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, chatID int64, text string) error {
	slog.Info("Telegram disabled, message not sent", "chat_id", chatID, "text", text)
	return nil
}
