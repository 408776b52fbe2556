package notify

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
)

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// EmailSender delivers an email.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Message is what a Provider delivers.
type Message struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Body      string `json:"message"`
}

// Provider is the transport behind the senders.
type Provider interface {
	Send(ctx context.Context, msg Message) error
}

// NewProvider picks a provider by kind: log (default), noop or webhook.
// A webhook without a URL falls back to logging.
func NewProvider(kind, channel, webhookURL string, logger *zap.Logger) Provider {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "noop":
		return noopProvider{}
	case "webhook":
		if webhookURL == "" {
			logger.Warn("webhook provider without url, falling back to log", zap.String("channel", channel))
			return logProvider{logger: logger}
		}
		return newWebhookProvider(webhookURL)
	default:
		return logProvider{logger: logger}
	}
}

// SMS adapts a Provider to SMSSender.
type SMS struct {
	Provider Provider
}

func (s SMS) SendSMS(ctx context.Context, to, message string) error {
	return s.Provider.Send(ctx, Message{Channel: ChannelSMS, Recipient: to, Body: message})
}

// Email adapts a Provider to EmailSender.
type Email struct {
	Provider Provider
}

func (e Email) SendEmail(ctx context.Context, to, subject, body string) error {
	return e.Provider.Send(ctx, Message{Channel: ChannelEmail, Recipient: to, Subject: subject, Body: body})
}

type logProvider struct {
	logger *zap.Logger
}

func (p logProvider) Send(ctx context.Context, msg Message) error {
	p.logger.Info("notification",
		zap.String("channel", msg.Channel),
		zap.String("recipient", msg.Recipient),
		zap.String("subject", msg.Subject),
		zap.String("message", msg.Body),
	)
	return nil
}

type noopProvider struct{}

func (noopProvider) Send(ctx context.Context, msg Message) error {
	return nil
}
