package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier forwards case notifications to a fixed ops channel, so the
// ethics team sees submissions without keeping a dashboard open.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramNotifier authorizes the bot and targets the given chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Telegram notifier authorized on account %s", bot.Self.UserName)

	return &TelegramNotifier{BotAPI: bot, ChatID: chatID}, nil
}

// Notify sends the notification as one Telegram message. Delivery failures
// are logged and swallowed: alerts are best-effort and must never block a
// case operation.
func (n *TelegramNotifier) Notify(title, description string) {
	msg := tgbotapi.NewMessage(n.ChatID, fmt.Sprintf("%s\n%s", title, description))
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("Error sending Telegram notification: %v", err)
	}
}
