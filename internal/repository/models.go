package repository

import "time"

// Transaction record lifecycle. Once execution starts the record always
// reaches confirmed or failed, even if the triggering channel connection is
// long gone.
const (
	TxStatusPending   = "pending"
	TxStatusSubmitted = "submitted"
	TxStatusConfirmed = "confirmed"
	TxStatusFailed    = "failed"
	TxStatusExpired   = "expired"
)

// Pending claim lifecycle. A claim leaves "locked" exactly once.
const (
	ClaimStatusLocked   = "locked"
	ClaimStatusClaimed  = "claimed"
	ClaimStatusRefunded = "refunded"
	ClaimStatusExpired  = "expired"
)

// Wallet is a custodial account addressed by phone number. Exactly one wallet
// per E.164 number; created lazily on first contact or first time the number
// is named as a recipient.
type Wallet struct {
	PhoneNumber   string    `gorm:"size:16;primaryKey;autoIncrement:false"`
	Address       string    `gorm:"size:42;not null"` // 0x + 40 hex
	CustodyKeyRef string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TransactionRecord tracks one inbound financial action. ID doubles as the
// idempotency key, derived from channel + channel-native message id, so a
// replayed webhook can never create a second row.
type TransactionRecord struct {
	ID           string    `gorm:"size:36;primaryKey;autoIncrement:false"`
	Channel      string    `gorm:"size:16;not null"`
	MessageID    string    `gorm:"size:128;not null"`
	FromPhone    string    `gorm:"size:16;not null;index"`
	ToPhone      *string   `gorm:"size:16"`                     // nil until the recipient is resolved
	Amount       string    `gorm:"size:100;not null;default:0"` // base units
	Asset        string    `gorm:"size:10;not null;default:''"`
	Status       string    `gorm:"size:10;not null;index"`
	ChainTxHash  *string   `gorm:"size:66"`
	ResponseText string    `gorm:"type:text;not null;default:''"`
	AckSent      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// PendingClaim is an escrow hold for a recipient without a wallet. Funds
// locked here are off the sender's balance until claimed or refunded.
type PendingClaim struct {
	ClaimID        string    `gorm:"size:36;primaryKey;autoIncrement:false"`
	RecipientPhone string    `gorm:"size:16;not null;index"`
	SenderPhone    string    `gorm:"size:16;not null"`
	Amount         string    `gorm:"size:100;not null"` // base units
	Asset          string    `gorm:"size:10;not null"`
	EscrowRef      string    `gorm:"size:66;not null"` // on-chain lock reference
	LockTxHash     string    `gorm:"size:66;not null;default:''"`
	Status         string    `gorm:"size:10;not null;index"`
	ReleaseTxHash  *string   `gorm:"size:66"`
	RefundTxHash   *string   `gorm:"size:66"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// Operator is an administrative login for the admin API.
type Operator struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
