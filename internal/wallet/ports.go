package wallet

import (
	"context"
	"math/big"

	"textpay/internal/custody"
	"textpay/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CustodyProvider . CustodyProvider
type CustodyProvider interface {
	CreateKey(ctx context.Context) (custody.Key, error)
}

//counterfeiter:generate -o fake -fake-name WalletStore . WalletStore
type WalletStore interface {
	InsertWalletIfAbsent(ctx context.Context, wallet repository.Wallet) (bool, error)
	GetWalletByPhone(ctx context.Context, phone string) (repository.Wallet, error)
}

//counterfeiter:generate -o fake -fake-name Balancer . Balancer
type Balancer interface {
	BalanceOf(ctx context.Context, address string, asset string) (*big.Int, error)
}
