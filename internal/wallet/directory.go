package wallet

import (
	"context"
	"errors"
	"fmt"

	"textpay/internal/repository"
	"textpay/pkg/currency"

	"go.uber.org/zap"
)

var ErrWalletNotFound error = errors.New("wallet not found")
var ErrCustodyUnavailable error = errors.New("custody provider unavailable")

// Directory resolves phone numbers to custodial wallets, creating them
// lazily. It owns the Wallet collection exclusively.
type Directory struct {
	logs    *zap.SugaredLogger
	store   WalletStore
	custody CustodyProvider
	chain   Balancer
}

func NewDirectory(logger *zap.SugaredLogger, store WalletStore, custodyProvider CustodyProvider, chain Balancer) *Directory {
	return &Directory{
		logs:    logger,
		store:   store,
		custody: custodyProvider,
		chain:   chain,
	}
}

// ResolveOrCreate returns the wallet for phone, creating it on first sight.
// Concurrent calls for the same number serialize on the unique-constraint
// insert: only one caller wins the insert, everyone else re-reads the row the
// winner created.
func (d *Directory) ResolveOrCreate(ctx context.Context, phone string) (repository.Wallet, error) {
	wallet, err := d.store.GetWalletByPhone(ctx, phone)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, repository.ErrWalletNotFound) {
		return repository.Wallet{}, fmt.Errorf("lookup wallet: %w", err)
	}

	key, err := d.custody.CreateKey(ctx)
	if err != nil {
		return repository.Wallet{}, fmt.Errorf("%w: %w", ErrCustodyUnavailable, err)
	}

	inserted, err := d.store.InsertWalletIfAbsent(ctx, repository.Wallet{
		PhoneNumber:   phone,
		Address:       key.Address,
		CustodyKeyRef: key.KeyRef,
	})
	if err != nil {
		return repository.Wallet{}, fmt.Errorf("insert wallet: %w", err)
	}

	if !inserted {
		// lost the creation race, the winner's row is authoritative
		wallet, err = d.store.GetWalletByPhone(ctx, phone)
		if err != nil {
			return repository.Wallet{}, fmt.Errorf("re-read wallet after conflict: %w", err)
		}
		return wallet, nil
	}

	d.logs.Infow("wallet created", "phone", phone, "address", key.Address)

	wallet, err = d.store.GetWalletByPhone(ctx, phone)
	if err != nil {
		return repository.Wallet{}, fmt.Errorf("read wallet after insert: %w", err)
	}

	return wallet, nil
}

// Lookup is the read-only resolution path. It never creates a wallet.
func (d *Directory) Lookup(ctx context.Context, phone string) (repository.Wallet, error) {
	wallet, err := d.store.GetWalletByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return repository.Wallet{}, ErrWalletNotFound
		}
		return repository.Wallet{}, fmt.Errorf("lookup wallet: %w", err)
	}

	return wallet, nil
}

// GetBalance reads on-chain balances per supported asset. Values come
// straight from the chain on every call, so the reply always reflects
// settlement truth, escrow-locked funds excluded.
func (d *Directory) GetBalance(ctx context.Context, phone string) (map[string]string, error) {
	wallet, err := d.Lookup(ctx, phone)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]string)
	for _, asset := range currency.Supported() {
		units, err := d.chain.BalanceOf(ctx, wallet.Address, asset.Symbol)
		if err != nil {
			return nil, fmt.Errorf("balance of %s: %w", asset.Symbol, err)
		}
		balances[asset.Symbol] = currency.FormatAmount(units, asset)
	}

	return balances, nil
}
