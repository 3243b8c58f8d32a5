package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
)

// publishMail serializes a mail message onto the queue. Callers on booking
// paths treat failures as non-fatal; the OTP flow treats them as fatal since
// the mail IS the operation there.
func (h *Handler) publishMail(msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// notify records an in-app notification and optionally mails the recipient.
// Fire-and-forget: the booking flows stay correct whether or not the
// notification lands, so failures are only logged.
func (h *Handler) notify(n *domain.Notification, mail *domain.MailMessage) {
	if err := h.repository.CreateNotification(n); err != nil {
		slog.Error("failed to record notification", "to", n.ToID, "title", n.Title, "error", err)
	}

	if mail != nil {
		if err := h.publishMail(*mail); err != nil {
			slog.Error("failed to publish mail", "to", mail.To, "type", mail.Type, "error", err)
		}
	}
}
