package notificator

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"

	"github.com/core-coin/tokenforge/internal/models"
	"github.com/core-coin/tokenforge/pkg/logger"
)

const telegramSendTimeout = 10 * time.Second

// TelegramNotificator mirrors finished notifications to a single chat.
// Loading notifications are skipped; the chat only sees outcomes.
type TelegramNotificator struct {
	logger *logger.Logger
	bot    *bot.Bot
	chatID string
}

func NewTelegramNotificator(logger *logger.Logger, token, chatID string, opts ...bot.Option) (*TelegramNotificator, error) {
	b, err := bot.New(token, append([]bot.Option{bot.WithSkipGetMe()}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &TelegramNotificator{logger: logger, bot: b, chatID: chatID}, nil
}

func (t *TelegramNotificator) Name() string { return "telegram" }

func (t *TelegramNotificator) Deliver(notification models.Notification) {
	if notification.Kind == models.NotificationLoading {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), telegramSendTimeout)
	defer cancel()

	params := &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   notification.String(),
	}
	if _, err := t.bot.SendMessage(ctx, params); err != nil {
		t.logger.Error("Failed to send telegram notification", "error", err, "id", notification.ID)
	}
}
