package core

import "github.com/google/uuid"

// Channel identifies the messaging transport a message arrived on. Domain
// logic never branches on it beyond normalization at the boundary.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
	ChannelUSSD     Channel = "ussd"
)

// InboundMessage is the single normalized shape every webhook reduces to
// before any domain logic runs. MenuPath is set instead of Text for
// menu-driven telephony input.
type InboundMessage struct {
	Channel   Channel
	FromPhone string
	Text      string
	MenuPath  string
	MessageID string
}

// Ack is the user-facing outcome of one inbound message. Pending means the
// final confirmation will arrive out-of-band once the chain settles.
type Ack struct {
	ToPhone string
	Text    string
	Pending bool
}

// RecordID derives the idempotency key for an inbound message. The same
// channel + channel-native message id always maps to the same record id, so
// webhook replays collapse onto one transaction record.
func RecordID(channel Channel, messageID string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("textpay:"+string(channel)+":"+messageID))
}
