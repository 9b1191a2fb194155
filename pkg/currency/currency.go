package currency

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrUnknownAsset error = errors.New("unknown asset")
var ErrInvalidAmount error = errors.New("invalid amount")

// Asset describes a supported token and its on-chain precision.
type Asset struct {
	Symbol   string
	Decimals int
}

var supported = map[string]Asset{
	"USDC": {Symbol: "USDC", Decimals: 6},
	"USDT": {Symbol: "USDT", Decimals: 6},
	"DAI":  {Symbol: "DAI", Decimals: 18},
}

func Lookup(symbol string) (Asset, error) {
	asset, ok := supported[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownAsset, symbol)
	}
	return asset, nil
}

func Supported() []Asset {
	assets := make([]Asset, 0, len(supported))
	for _, symbol := range []string{"USDC", "USDT", "DAI"} {
		assets = append(assets, supported[symbol])
	}
	return assets
}

// ParseAmount converts a decimal string like "10" or "0.25" into base units
// for the asset. Zero, negative, malformed and over-precise values are
// rejected with ErrInvalidAmount.
func ParseAmount(value string, asset Asset) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}
	if strings.HasPrefix(value, "-") || strings.HasPrefix(value, "+") {
		return nil, fmt.Errorf("%w: %q must be a plain positive decimal", ErrInvalidAmount, value)
	}

	whole, frac := value, ""
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		whole, frac = value[:idx], value[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, value)
	}
	if len(frac) > asset.Decimals {
		return nil, fmt.Errorf("%w: %q exceeds %d decimal places for %s", ErrInvalidAmount, value, asset.Decimals, asset.Symbol)
	}

	frac += strings.Repeat("0", asset.Decimals-len(frac))

	units, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, value)
	}
	if units.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}

	return units, nil
}

// FormatAmount renders base units back into a decimal string for user-facing
// replies, trimming trailing fractional zeros.
func FormatAmount(units *big.Int, asset Asset) string {
	if units == nil {
		return "0"
	}

	str := units.String()
	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}
	if len(str) <= asset.Decimals {
		str = strings.Repeat("0", asset.Decimals-len(str)+1) + str
	}

	whole := str[:len(str)-asset.Decimals]
	frac := strings.TrimRight(str[len(str)-asset.Decimals:], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if negative {
		out = "-" + out
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
