// internal/app/poller_service.go
package app

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// PollerService owns the whole notification lifecycle: it repeatedly queries
// the status API, validates the response, derives a verdict message when the
// latest homework record changed, and forwards it to the configured Telegram
// chat. All state (poll cursor, last notified record, last reported error
// kind) lives in memory for the lifetime of the process.
type PollerService struct {
	statusClient   homework.StatusProvider
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
	chatID         int64
	interval       time.Duration

	// Loop state. Only PollOnce mutates these; timestamp and lastHomework
	// are never touched from other goroutines.
	timestamp    int64
	lastHomework any
	lastErrKind  homework.ErrorKind

	// lastMessage is read by the /status handler and the daily summary,
	// which run on other goroutines.
	mu          sync.Mutex
	lastMessage string
}

func NewPollerService(
	statusClient homework.StatusProvider,
	telegramClient domainTelegram.Client,
	logger *logrus.Entry,
	chatID int64,
	interval time.Duration,
) *PollerService {
	return &PollerService{
		statusClient:   statusClient,
		telegramClient: telegramClient,
		logger:         logger,
		chatID:         chatID,
		interval:       interval,
		timestamp:      time.Now().Unix(),
	}
}

// Run executes poll cycles until ctx is cancelled, sleeping exactly one
// interval after every cycle regardless of its outcome. There is no other
// terminal state; persistent failures keep retrying on the same cadence.
func (s *PollerService) Run(ctx context.Context) {
	s.logger.WithField("interval", s.interval.String()).Info("Homework poller started.")
	for {
		s.PollOnce(ctx)
		select {
		case <-ctx.Done():
			s.logger.Info("Homework poller stopped.")
			return
		case <-time.After(s.interval):
		}
	}
}

// PollOnce performs exactly one poll cycle. Errors raised by the query,
// validation or verdict steps are converted into a single user-facing error
// notification, de-duplicated by error kind so a persistent failure is
// reported once rather than every cycle.
func (s *PollerService) PollOnce(ctx context.Context) {
	if err := s.iterate(ctx); err != nil {
		s.reportError(err)
	}
}

func (s *PollerService) iterate(ctx context.Context) error {
	response, err := s.statusClient.HomeworkStatuses(ctx, s.timestamp)
	if err != nil {
		return err
	}

	records, err := homework.CheckResponse(response)
	if err != nil {
		return err
	}

	if len(records) > 0 && !reflect.DeepEqual(records[0], s.lastHomework) {
		message, err := homework.ParseStatus(records[0])
		if err != nil {
			return err
		}
		s.send(message)
		s.lastHomework = records[0]
		s.setLastMessage(message)
		s.logger.Debug(message)
	} else {
		s.logger.Debug("Homework status unchanged.")
	}

	// Advance the cursor only after a successful poll, to the timestamp the
	// server reports as its own current time.
	if ts, ok := homework.ResponseTimestamp(response); ok {
		s.timestamp = ts
	}
	return nil
}

func (s *PollerService) reportError(err error) {
	kind := homework.KindOf(err)
	if kind == s.lastErrKind {
		s.logger.WithField("error_kind", string(kind)).Debugf("Suppressing repeated error: %v", err)
		return
	}

	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	s.logger.WithField("error_kind", string(kind)).Error(message)
	s.send(message)
	s.lastErrKind = kind
}

// send forwards a message to the configured chat. Delivery is best-effort:
// a failure is logged and otherwise dropped so it never halts the loop.
func (s *PollerService) send(message string) {
	s.logger.Debug("Preparing to send a Telegram message")
	if err := s.telegramClient.SendMessage(s.chatID, message); err != nil {
		s.logger.WithError(err).Errorf("Failed to send message to chat %d", s.chatID)
		return
	}
	s.logger.Debugf("Bot sent the message: %s", message)
}

func (s *PollerService) setLastMessage(message string) {
	s.mu.Lock()
	s.lastMessage = message
	s.mu.Unlock()
}

// LastStatusMessage returns the most recently composed status notification,
// or the empty string when no status has been seen yet.
func (s *PollerService) LastStatusMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMessage
}
