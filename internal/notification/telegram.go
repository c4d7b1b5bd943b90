package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram tells the shop's chat about every new booking.
type Telegram struct {
	bot    telegramSender
	chatID int64
	log    logrus.FieldLogger
}

func NewTelegram(token string, chatID int64, log logrus.FieldLogger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID, log: log}, nil
}

func (t *Telegram) BookingConfirmed(ctx context.Context, c Confirmation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, FormatConfirmation(c))
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	t.log.WithField("booking_id", c.BookingID).Debug("telegram confirmation sent")
	return nil
}

func FormatConfirmation(c Confirmation) string {
	return fmt.Sprintf(
		"Nuovo appuntamento #%d\n%s, %s alle %s con %s\nCliente: %s (%s)",
		c.BookingID,
		c.Service,
		c.Start.Format("02/01/2006"),
		c.Start.Format("15:04"),
		c.StaffName,
		c.CustomerName,
		c.CustomerPhone,
	)
}
