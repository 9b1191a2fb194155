package intent

import (
	"fmt"
	"math/big"
	"strings"

	"textpay/pkg/currency"
	"textpay/pkg/phone"
)

// Kind tags the intent variant.
type Kind string

const (
	KindSend    Kind = "send"
	KindBalance Kind = "balance"
	KindStake   Kind = "stake"
	KindSwap    Kind = "swap"
	KindBridge  Kind = "bridge"
	KindUnknown Kind = "unknown"
)

// Intent is the structured, validated representation of what the user asked
// for. Unknown carries a best-effort Reason; the payload fields are only set
// for the variants that use them.
type Intent struct {
	Kind      Kind
	Amount    *big.Int // base units
	Asset     currency.Asset
	Recipient string         // E.164, send only
	ToAsset   currency.Asset // swap only
	Reason    string         // unknown only
}

// Parser turns raw channel input into intents. It is a pure function of its
// inputs; the default country code is the only configuration.
type Parser struct {
	defaultCountryCode string
}

func NewParser(defaultCountryCode string) Parser {
	return Parser{
		defaultCountryCode: defaultCountryCode,
	}
}

// Parse handles free text like "Send 10 USDC to +2348010000000".
func (p Parser) Parse(text string) Intent {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return unknown("empty message")
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "send":
		return p.parseSend(args)
	case "balance":
		return Intent{Kind: KindBalance}
	case "stake":
		return p.parseAmountAsset(KindStake, args)
	case "swap":
		return p.parseSwap(args)
	case "bridge":
		return p.parseAmountAsset(KindBridge, args)
	default:
		return unknown(fmt.Sprintf("unrecognized command %q", fields[0]))
	}
}

// ParseMenu handles positional telephony-menu paths ("step*value*value"):
// 1*amount*asset*phone send, 2 balance, 3*amount*asset stake,
// 4*amount*asset*asset swap, 5*amount*asset bridge. The same amount and
// phone rules apply as for free text.
func (p Parser) ParseMenu(path string) Intent {
	steps := strings.Split(strings.TrimSpace(path), "*")
	if len(steps) == 0 || steps[0] == "" {
		return unknown("empty menu selection")
	}

	switch steps[0] {
	case "1":
		if len(steps) != 4 {
			return unknown("send requires amount, asset and recipient")
		}
		return p.parseSend([]string{steps[1], steps[2], steps[3]})
	case "2":
		return Intent{Kind: KindBalance}
	case "3":
		return p.parseAmountAsset(KindStake, steps[1:])
	case "4":
		return p.parseSwap(steps[1:])
	case "5":
		return p.parseAmountAsset(KindBridge, steps[1:])
	default:
		return unknown(fmt.Sprintf("unrecognized menu option %q", steps[0]))
	}
}

// parseSend accepts "10 USDC to +234..." and the particle-free positional
// form used by menus.
func (p Parser) parseSend(args []string) Intent {
	args = dropParticles(args)
	if len(args) < 3 {
		return unknown("send requires amount, asset and recipient")
	}

	asset, err := currency.Lookup(args[1])
	if err != nil {
		return unknown(fmt.Sprintf("unknown asset %q", args[1]))
	}

	amount, err := currency.ParseAmount(args[0], asset)
	if err != nil {
		return unknown(fmt.Sprintf("invalid amount %q", args[0]))
	}

	if !phone.Looks(args[2]) {
		return unknown(fmt.Sprintf("%q does not look like a phone number", args[2]))
	}
	recipient, err := phone.Normalize(args[2], p.defaultCountryCode)
	if err != nil {
		return unknown(fmt.Sprintf("invalid recipient number %q", args[2]))
	}

	return Intent{
		Kind:      KindSend,
		Amount:    amount,
		Asset:     asset,
		Recipient: recipient,
	}
}

func (p Parser) parseAmountAsset(kind Kind, args []string) Intent {
	args = dropParticles(args)
	if len(args) < 2 {
		return unknown(fmt.Sprintf("%s requires amount and asset", kind))
	}

	asset, err := currency.Lookup(args[1])
	if err != nil {
		return unknown(fmt.Sprintf("unknown asset %q", args[1]))
	}

	amount, err := currency.ParseAmount(args[0], asset)
	if err != nil {
		return unknown(fmt.Sprintf("invalid amount %q", args[0]))
	}

	return Intent{
		Kind:   kind,
		Amount: amount,
		Asset:  asset,
	}
}

func (p Parser) parseSwap(args []string) Intent {
	args = dropParticles(args)
	if len(args) < 3 {
		return unknown("swap requires amount, source asset and target asset")
	}

	from, err := currency.Lookup(args[1])
	if err != nil {
		return unknown(fmt.Sprintf("unknown asset %q", args[1]))
	}
	to, err := currency.Lookup(args[2])
	if err != nil {
		return unknown(fmt.Sprintf("unknown asset %q", args[2]))
	}

	amount, err := currency.ParseAmount(args[0], from)
	if err != nil {
		return unknown(fmt.Sprintf("invalid amount %q", args[0]))
	}

	return Intent{
		Kind:    KindSwap,
		Amount:  amount,
		Asset:   from,
		ToAsset: to,
	}
}

// dropParticles removes connective words so "send 10 usdc to +234..." and
// "swap 5 usdc for usdt" parse positionally.
func dropParticles(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "to", "for", "into":
			continue
		}
		out = append(out, arg)
	}
	return out
}

func unknown(reason string) Intent {
	return Intent{
		Kind:   KindUnknown,
		Reason: reason,
	}
}
