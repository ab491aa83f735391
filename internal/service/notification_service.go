package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/grancoffee/helpdesk-service/internal/config"
	"github.com/grancoffee/helpdesk-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRecordCreated, n.handleRecordCreated)
	n.dispatcher.Subscribe(events.EventRecordClaimed, n.handleRecordClaimed)
	n.dispatcher.Subscribe(events.EventRecordStatusChanged, n.handleRecordStatusChanged)
	n.dispatcher.Subscribe(events.EventRecordTreatmentAdded, n.handleRecordTreatmentAdded)
}

func (n *NotificationService) handleRecordCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("RecordCreated", zap.String("kind", event.Kind), zap.String("record_id", event.RecordID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRecordClaimed(ctx context.Context, event events.Event) error {
	n.logger.Info("RecordClaimed", zap.String("kind", event.Kind), zap.String("record_id", event.RecordID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRecordStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("RecordStatusChanged", zap.String("kind", event.Kind), zap.String("record_id", event.RecordID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRecordTreatmentAdded(ctx context.Context, event events.Event) error {
	n.logger.Info("RecordTreatmentAdded", zap.String("kind", event.Kind), zap.String("record_id", event.RecordID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("record_id", event.RecordID),
		zap.String("event_type", string(event.Type)))
}
