package chain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Failure taxonomy for on-chain submissions. ErrChainUnavailable is the only
// retryable class; ErrTimeout is ambiguous and left to the confirmation
// poller, never blindly resubmitted.
var ErrInsufficientFunds error = errors.New("insufficient funds")
var ErrChainUnavailable error = errors.New("chain unavailable")
var ErrRejected error = errors.New("transaction rejected")
var ErrTimeout error = errors.New("submission timed out")

var transientTokens = []string{
	"timeout",
	"timed out",
	"temporar",
	"unavailable",
	"connection reset",
	"connection refused",
	"broken pipe",
	"too many requests",
	"rate limit",
	"http status 429",
	"http status 502",
	"http status 503",
	"http status 504",
	"eof",
}

var rejectedTokens = []string{
	"execution reverted",
	"revert",
	"invalid argument",
	"invalid params",
	"nonce too low",
	"already known",
	"gas limit",
}

// classify maps a raw RPC/client error onto the taxonomy, keeping the
// original error in the chain for logs.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	lower := strings.ToLower(err.Error())

	if strings.Contains(lower, "insufficient funds") || strings.Contains(lower, "transfer amount exceeds balance") {
		return fmt.Errorf("%w: %w", ErrInsufficientFunds, err)
	}
	if containsAny(lower, transientTokens) {
		return fmt.Errorf("%w: %w", ErrChainUnavailable, err)
	}
	if containsAny(lower, rejectedTokens) {
		return fmt.Errorf("%w: %w", ErrRejected, err)
	}

	// unknown errors are terminal so a retry can never double-spend
	return fmt.Errorf("%w: %w", ErrRejected, err)
}

func containsAny(msg string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(msg, token) {
			return true
		}
	}
	return false
}
