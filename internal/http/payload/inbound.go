package payload

import (
	"textpay/internal/core"

	"github.com/jellydator/validation"
)

// Channel webhooks arrive in channel-native shapes. Each payload type
// normalizes itself into the one core.InboundMessage the orchestrator
// accepts; nothing downstream ever sees channel-specific fields. Signature
// verification of the webhooks happens upstream of this service.

type WhatsAppInbound struct {
	From      string `json:"from"`
	Body      string `json:"body"`
	MessageID string `json:"message_id"`
}

func (w WhatsAppInbound) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.From, validation.Required),
		validation.Field(&w.Body, validation.Required),
		validation.Field(&w.MessageID, validation.Required),
	)
}

func (w WhatsAppInbound) ToInbound() core.InboundMessage {
	return core.InboundMessage{
		Channel:   core.ChannelWhatsApp,
		FromPhone: w.From,
		Text:      w.Body,
		MessageID: w.MessageID,
	}
}

type SMSInbound struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	MessageID string `json:"message_id"`
}

func (s SMSInbound) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Sender, validation.Required),
		validation.Field(&s.Text, validation.Required),
		validation.Field(&s.MessageID, validation.Required),
	)
}

func (s SMSInbound) ToInbound() core.InboundMessage {
	return core.InboundMessage{
		Channel:   core.ChannelSMS,
		FromPhone: s.Sender,
		Text:      s.Text,
		MessageID: s.MessageID,
	}
}

// USSDInbound carries a menu path ("1*10*USDC*+234...") instead of prose.
// The session id is the channel-native message id: a gateway retry for the
// same session step replays, it does not double-execute.
type USSDInbound struct {
	PhoneNumber string `json:"phone_number"`
	SessionID   string `json:"session_id"`
	Text        string `json:"text"`
}

func (u USSDInbound) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.PhoneNumber, validation.Required),
		validation.Field(&u.SessionID, validation.Required),
		validation.Field(&u.Text, validation.Required),
	)
}

func (u USSDInbound) ToInbound() core.InboundMessage {
	return core.InboundMessage{
		Channel:   core.ChannelUSSD,
		FromPhone: u.PhoneNumber,
		MenuPath:  u.Text,
		MessageID: u.SessionID,
	}
}
