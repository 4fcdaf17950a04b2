package scheduler

import (
	"time"

	"homework_notification_bot/internal/app"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SummaryScheduler sends a daily message with the last known homework status,
// so the chat gets a heartbeat even when nothing changed between polls.
type SummaryScheduler struct {
	cronEngine     *cron.Cron
	poller         *app.PollerService
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
	cronSpec       string
	chatID         int64
}

func NewSummaryScheduler(
	poller *app.PollerService,
	telegramClient domainTelegram.Client,
	logger *logrus.Entry,
	cronSpec string, // e.g., "0 9 * * *" (9 AM daily)
	chatID int64,
) *SummaryScheduler {
	return &SummaryScheduler{
		cronEngine:     cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		poller:         poller,
		telegramClient: telegramClient,
		logger:         logger,
		cronSpec:       cronSpec,
		chatID:         chatID,
	}
}

func (s *SummaryScheduler) Start() {
	s.logger.Info("Starting daily summary scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpec, func() {
		s.logger.Info("Cron job triggered for daily summary.")

		message := s.poller.LastStatusMessage()
		if message == "" {
			message = "Статус домашней работы пока неизвестен."
		}

		if err := s.telegramClient.SendMessage(s.chatID, "Ежедневная сводка. "+message); err != nil {
			s.logger.WithError(err).Error("Failed to send daily summary.")
		} else {
			s.logger.Info("Daily summary sent.")
		}
	})
	if err != nil {
		s.logger.Fatalf("Could not add daily summary cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Daily summary scheduler started.")
}

func (s *SummaryScheduler) Stop() {
	s.logger.Info("Stopping daily summary scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Daily summary scheduler gracefully stopped.")
}
