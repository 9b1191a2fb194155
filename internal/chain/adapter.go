package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"textpay/internal/repository"
	"textpay/pkg/currency"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnknownToken error = errors.New("no token contract for asset")

const defaultAttempts = 3
const defaultBackoff = 500 * time.Millisecond

// Adapter is the stateless façade over the chain: it signs and submits
// escrow-mediated transfers, locks, releases and refunds, and reads token
// balances. It owns no persisted state.
type Adapter struct {
	logs     *zap.SugaredLogger
	chainID  *big.Int
	keys     KeyProvider
	operator *ecdsa.PrivateKey
	escrow   BoundContract
	tokens   map[string]Token
	attempts int
	backoff  time.Duration
}

// NewAdapter wires the adapter. operator signs service-side escrow calls
// (release, refund); user-side calls are signed with custody keys.
func NewAdapter(logger *zap.SugaredLogger, chainID *big.Int, keys KeyProvider, operator *ecdsa.PrivateKey, escrow BoundContract, tokens map[string]Token) *Adapter {
	return &Adapter{
		logs:     logger,
		chainID:  chainID,
		keys:     keys,
		operator: operator,
		escrow:   escrow,
		tokens:   tokens,
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
	}
}

// Transfer submits a ref-bound token transfer from a custodial wallet and
// returns once the transaction is accepted by the node. Confirmation is the
// poller's business.
func (a *Adapter) Transfer(ctx context.Context, from repository.Wallet, toAddress string, amount *big.Int, asset currency.Asset, ref uuid.UUID) (string, error) {
	token, ok := a.tokens[asset.Symbol]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownToken, asset.Symbol)
	}

	opts, err := a.walletOpts(ctx, from)
	if err != nil {
		return "", err
	}

	tx, err := a.transact(ctx, func() (*types.Transaction, error) {
		return a.escrow.Transact(opts, "transfer", refHash(ref), token.Address, common.HexToAddress(toAddress), amount)
	})
	if err != nil {
		return "", fmt.Errorf("submit transfer: %w", err)
	}

	a.logs.Infow("transfer submitted", "tx_hash", tx.Hash().Hex(), "ref", ref.String(), "asset", asset.Symbol)

	return tx.Hash().Hex(), nil
}

// Lock moves funds from the sender's wallet into the escrow contract under
// the given ref. Returns the submission hash and the on-chain lock reference.
func (a *Adapter) Lock(ctx context.Context, from repository.Wallet, amount *big.Int, asset currency.Asset, ref uuid.UUID, expiresAt time.Time) (string, string, error) {
	token, ok := a.tokens[asset.Symbol]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownToken, asset.Symbol)
	}

	opts, err := a.walletOpts(ctx, from)
	if err != nil {
		return "", "", err
	}

	lockRef := refHash(ref)

	tx, err := a.transact(ctx, func() (*types.Transaction, error) {
		return a.escrow.Transact(opts, "lock", lockRef, token.Address, amount, big.NewInt(expiresAt.Unix()))
	})
	if err != nil {
		return "", "", fmt.Errorf("submit escrow lock: %w", err)
	}

	a.logs.Infow("escrow lock submitted", "tx_hash", tx.Hash().Hex(), "escrow_ref", lockRef.Hex())

	return tx.Hash().Hex(), lockRef.Hex(), nil
}

// Release pays a locked claim out to the (newly created) recipient wallet.
func (a *Adapter) Release(ctx context.Context, escrowRef, toAddress string) (string, error) {
	opts, err := a.operatorOpts(ctx)
	if err != nil {
		return "", err
	}

	tx, err := a.transact(ctx, func() (*types.Transaction, error) {
		return a.escrow.Transact(opts, "release", common.HexToHash(escrowRef), common.HexToAddress(toAddress))
	})
	if err != nil {
		return "", fmt.Errorf("submit escrow release: %w", err)
	}

	return tx.Hash().Hex(), nil
}

// Refund returns an expired claim's funds to the original sender.
func (a *Adapter) Refund(ctx context.Context, escrowRef string) (string, error) {
	opts, err := a.operatorOpts(ctx)
	if err != nil {
		return "", err
	}

	tx, err := a.transact(ctx, func() (*types.Transaction, error) {
		return a.escrow.Transact(opts, "refund", common.HexToHash(escrowRef))
	})
	if err != nil {
		return "", fmt.Errorf("submit escrow refund: %w", err)
	}

	return tx.Hash().Hex(), nil
}

func (a *Adapter) BalanceOf(ctx context.Context, address string, asset string) (*big.Int, error) {
	token, ok := a.tokens[asset]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, asset)
	}

	var out []interface{}
	err := token.Contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", common.HexToAddress(address))
	if err != nil {
		return nil, classify(err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("balanceOf returned %d values, want 1", len(out))
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("balanceOf returned %T, want *big.Int", out[0])
	}

	return balance, nil
}

// transact wraps a submission with classification and bounded exponential
// backoff. Only ErrChainUnavailable is retried; a timeout is surfaced as-is
// for the reconciliation path.
func (a *Adapter) transact(ctx context.Context, submit func() (*types.Transaction, error)) (*types.Transaction, error) {
	backoff := a.backoff

	var lastErr error
	for attempt := 1; attempt <= a.attempts; attempt++ {
		tx, err := submit()
		if err == nil {
			return tx, nil
		}

		lastErr = classify(err)
		if !errors.Is(lastErr, ErrChainUnavailable) {
			return nil, lastErr
		}

		a.logs.Errorw("transient submission failure", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, lastErr
}

func (a *Adapter) walletOpts(ctx context.Context, wallet repository.Wallet) (*bind.TransactOpts, error) {
	priv, err := a.keys.PrivateKey(ctx, wallet.CustodyKeyRef)
	if err != nil {
		return nil, fmt.Errorf("load custody key: %w", err)
	}

	return a.signerOpts(ctx, priv)
}

func (a *Adapter) operatorOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return a.signerOpts(ctx, a.operator)
}

func (a *Adapter) signerOpts(ctx context.Context, priv *ecdsa.PrivateKey) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(priv, a.chainID)
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx

	return opts, nil
}

// refHash widens the 16-byte record id into the bytes32 the contract expects.
func refHash(ref uuid.UUID) common.Hash {
	var h common.Hash
	copy(h[:], ref[:])
	return h
}
