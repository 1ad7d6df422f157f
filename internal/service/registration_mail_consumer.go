package service

import (
	"context"
	"encoding/json"

	"ocbs-be/internal/dto"
	"ocbs-be/internal/pkg/logger"
	"ocbs-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// registrationMailConsumer sends the confirmation mail for new registrations.
type registrationMailConsumer struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewRegistrationMailConsumer(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &registrationMailConsumer{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		logger:       log,
	}
}

func (c *registrationMailConsumer) Consume(ctx context.Context) error {
	messages, err := c.pubSub.Subscribe(ctx, c.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(msg)
		}
	}()

	return nil
}

// processMessage always acks. gochannel redelivers a nack immediately, which
// would spin on an unreachable SMTP server.
func (c *registrationMailConsumer) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.RegistrationCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.logger.Error("RegistrationMailConsumer", "Failed to unmarshal message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err,
		})
		return
	}
	if payload.ContactEmail == "" {
		return
	}

	if err := c.emailService.SendRegistrationConfirmation(payload.ContactEmail, payload.Username); err != nil {
		c.logger.Error("RegistrationMailConsumer", "Failed to send confirmation mail", map[string]interface{}{
			"registration_id": payload.RegistrationId.String(),
			"error":           err,
		})
		return
	}

	c.logger.Info("RegistrationMailConsumer", "Confirmation mail sent", map[string]interface{}{
		"registration_id": payload.RegistrationId.String(),
	})
}
