package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestSender_Send(t *testing.T) {
	bot := &fakeBot{}
	s := &Sender{bot: bot}

	require.NoError(t, s.Send(context.Background(), 42, "hello"))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Equal(t, "hello", bot.sent[0].Text)
}

func TestSender_SendError(t *testing.T) {
	bot := &fakeBot{err: errors.New("Forbidden: bot was blocked by the user")}
	s := &Sender{bot: bot}

	err := s.Send(context.Background(), 42, "hello")
	assert.ErrorContains(t, err, "blocked")
}

func TestSender_CancelledContext(t *testing.T) {
	bot := &fakeBot{}
	s := &Sender{bot: bot}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, 42, "hello"), context.Canceled)
	assert.Empty(t, bot.sent)
}
