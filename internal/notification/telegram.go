package notification

import (
	"context"
	"fmt"

	"github.com/Kuhaakuore/Driven.t-API/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the operations chat. With an
// empty token it degrades to a no-op, so local setups need no bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, room *domain.Room) {
	text := fmt.Sprintf(
		"*New room booking*\n\nBooking: %d\nUser: %d\nRoom: %s (capacity %d)",
		booking.ID, booking.UserID, room.Name, room.Capacity,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingMoved(ctx context.Context, booking *domain.Booking, room *domain.Room) {
	text := fmt.Sprintf(
		"*Booking moved*\n\nBooking: %d\nUser: %d\nNew room: %s (capacity %d)",
		booking.ID, booking.UserID, room.Name, room.Capacity,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
