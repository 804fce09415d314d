package main

import (
	"github.com/SherClockHolmes/webpush-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"artist-booking-backend/config"
	"artist-booking-backend/internal/notification"
)

// buildSenders enables every notification channel that has credentials.
func buildSenders(cfg *config.Config, db *gorm.DB, push *webpush.Options, logger *zap.Logger) []notification.Sender {
	var senders []notification.Sender
	timeout := cfg.WorkerPool.SendTimeout()

	if cfg.Telegram.BotToken != "" {
		tg, err := notification.NewTelegramSender(cfg.Telegram.BotToken, cfg.Telegram.ChatID, timeout)
		if err != nil {
			logger.Error("telegram notifications disabled", zap.Error(err))
		} else {
			senders = append(senders, tg)
		}
	}

	if push.VAPIDPublicKey != "" && push.VAPIDPrivateKey != "" {
		senders = append(senders, notification.NewWebPushSender(db, push, timeout, logger.Named("webpush")))
	}

	if cfg.Email.APIKey != "" {
		mail, err := notification.NewEmailSender(cfg.Email, timeout)
		if err != nil {
			logger.Error("email notifications disabled", zap.Error(err))
		} else {
			senders = append(senders, mail)
		}
	}

	if len(senders) == 0 {
		logger.Warn("no notification channels configured; booking alerts will only be logged")
	}
	for _, s := range senders {
		logger.Info("notification channel enabled", zap.String("channel", s.Channel()))
	}
	return senders
}
