package chain

import (
	"context"
	"crypto/ecdsa"

	"textpay/internal/repository"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// BoundContract is the slice of bind.BoundContract the adapter uses.
//
//counterfeiter:generate -o fake -fake-name BoundContract . BoundContract
type BoundContract interface {
	Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
	Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
}

//counterfeiter:generate -o fake -fake-name KeyProvider . KeyProvider
type KeyProvider interface {
	PrivateKey(ctx context.Context, keyRef string) (*ecdsa.PrivateKey, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptFetcher . ReceiptFetcher
type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name RecordStore . RecordStore
type RecordStore interface {
	ListSubmitted(ctx context.Context) ([]repository.TransactionRecord, error)
	MarkTransaction(ctx context.Context, id, fromStatus, toStatus string, extra map[string]any) (bool, error)
	MarkAcknowledged(ctx context.Context, id, responseText string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Send(ctx context.Context, toPhone, text string) error
}
