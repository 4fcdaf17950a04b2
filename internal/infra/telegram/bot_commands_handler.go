// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"homework_notification_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands registers the /start and /status handlers. Both are
// restricted to the configured chat; messages from anywhere else are ignored.
func RegisterBotCommands(
	b *telebot.Bot,
	poller *app.PollerService,
	chatID int64,
	baseLogger *logrus.Entry,
) {
	b.Handle("/start", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/start").WithField("chat_id", c.Chat().ID)
		if c.Chat().ID != chatID {
			logCtx.Warn("Command from an unknown chat ignored")
			return nil
		}
		logCtx.Info("Processing /start command")
		return c.Send("Привет! Я слежу за статусом проверки вашей домашней работы и сообщу, как только он изменится. Команда /status покажет последний известный статус.")
	})

	b.Handle("/status", func(c telebot.Context) error {
		logCtx := baseLogger.WithField("command", "/status").WithField("chat_id", c.Chat().ID)
		if c.Chat().ID != chatID {
			logCtx.Warn("Command from an unknown chat ignored")
			return nil
		}
		logCtx.Info("Processing /status command")

		message := poller.LastStatusMessage()
		if message == "" {
			message = "Статус домашней работы пока неизвестен."
		}
		return c.Send(message)
	})
}
