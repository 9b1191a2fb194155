package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey         = "API_PORT"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	redisURLEnvKey        = "REDIS_URL"
	chainRPCEnvKey        = "CHAIN_RPC_URL"
	escrowAddressEnvKey   = "ESCROW_CONTRACT_ADDRESS"
	tokenAddressesEnvKey  = "TOKEN_ADDRESSES"
	operatorKeyEnvKey     = "OPERATOR_PRIVATE_KEY"
	dailyLimitEnvKey      = "DAILY_MESSAGE_LIMIT"
	claimWindowEnvKey     = "CLAIM_WINDOW_DAYS"
	countryCodeEnvKey     = "DEFAULT_COUNTRY_CODE"
	custodyPassEnvKey     = "CUSTODY_PASSPHRASE"
	jwtSecretEnvKey       = "JWT_SECRET"
	adminPassHashEnvKey   = "ADMIN_PASSWORD_HASH"
	outboundSenderEnvKey  = "OUTBOUND_SENDER_URL"
)

const (
	defaultDailyLimit      = 20
	defaultClaimWindowDays = 30
)

type App struct {
	Port               string
	DBConnectionURL    string
	RedisURL           string
	ChainRPCURL        string
	EscrowAddress      string
	TokenAddresses     map[string]string
	OperatorPrivateKey string
	DailyMessageLimit  int64
	ClaimWindowDays    int
	DefaultCountryCode string
	CustodyPassphrase  string
	JWTSecret          string
	AdminPasswordHash  string
	OutboundSenderURL  string
}

func NewApp() (App, error) {
	app := App{
		DailyMessageLimit: defaultDailyLimit,
		ClaimWindowDays:   defaultClaimWindowDays,
	}

	required := []struct {
		key  string
		dest *string
	}{
		{apiPortEnvKey, &app.Port},
		{dbConnEnvKey, &app.DBConnectionURL},
		{redisURLEnvKey, &app.RedisURL},
		{chainRPCEnvKey, &app.ChainRPCURL},
		{escrowAddressEnvKey, &app.EscrowAddress},
		{operatorKeyEnvKey, &app.OperatorPrivateKey},
		{countryCodeEnvKey, &app.DefaultCountryCode},
		{custodyPassEnvKey, &app.CustodyPassphrase},
		{jwtSecretEnvKey, &app.JWTSecret},
		{adminPassHashEnvKey, &app.AdminPasswordHash},
	}

	for _, env := range required {
		value, ok := os.LookupEnv(env.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, env.key)
		}
		*env.dest = value
	}

	tokens, ok := os.LookupEnv(tokenAddressesEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, tokenAddressesEnvKey)
	}
	addresses, err := parseTokenAddresses(tokens)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", tokenAddressesEnvKey, err)
	}
	app.TokenAddresses = addresses

	if raw, ok := os.LookupEnv(dailyLimitEnvKey); ok {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			return App{}, fmt.Errorf("parse %s: %q is not a positive integer", dailyLimitEnvKey, raw)
		}
		app.DailyMessageLimit = limit
	}

	if raw, ok := os.LookupEnv(claimWindowEnvKey); ok {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return App{}, fmt.Errorf("parse %s: %q is not a positive integer", claimWindowEnvKey, raw)
		}
		app.ClaimWindowDays = days
	}

	// outbound sender is optional, the notifier logs instead when unset
	app.OutboundSenderURL = os.Getenv(outboundSenderEnvKey)

	return app, nil
}

// Reset carries the subset of configuration the rate limiter reset command
// needs.
type Reset struct {
	RedisURL          string
	DailyMessageLimit int64
}

func NewResetApp() (Reset, error) {
	reset := Reset{
		DailyMessageLimit: defaultDailyLimit,
	}

	redisURL, ok := os.LookupEnv(redisURLEnvKey)
	if !ok {
		return Reset{}, fmt.Errorf("%w: %s", errEnvVarNotFound, redisURLEnvKey)
	}
	reset.RedisURL = redisURL

	if raw, ok := os.LookupEnv(dailyLimitEnvKey); ok {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit <= 0 {
			return Reset{}, fmt.Errorf("parse %s: %q is not a positive integer", dailyLimitEnvKey, raw)
		}
		reset.DailyMessageLimit = limit
	}

	return reset, nil
}

// parseTokenAddresses reads "USDC=0xabc...,USDT=0xdef..." into a
// symbol-to-address map.
func parseTokenAddresses(raw string) (map[string]string, error) {
	addresses := make(map[string]string)

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		symbol, address, found := strings.Cut(pair, "=")
		if !found || symbol == "" || address == "" {
			return nil, fmt.Errorf("malformed token pair %q", pair)
		}

		addresses[strings.ToUpper(strings.TrimSpace(symbol))] = strings.TrimSpace(address)
	}

	if len(addresses) == 0 {
		return nil, errors.New("no token addresses configured")
	}

	return addresses, nil
}
