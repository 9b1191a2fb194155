package core

import (
	"context"
	"errors"
	"fmt"

	"textpay/internal/repository"
	tokenIssuer "textpay/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrOperatorNotFound error = errors.New("operator not found")

type AuthMessage struct {
	Username string
	Password string
}

// Admin authenticates operators for the administrative endpoints.
type Admin struct {
	logs      *zap.SugaredLogger
	operators OperatorStore
	jwtIssuer JWTIssuer
}

func NewAdmin(logger *zap.SugaredLogger, operators OperatorStore, jwt JWTIssuer) *Admin {
	return &Admin{
		logs:      logger,
		operators: operators,
		jwtIssuer: jwt,
	}
}

// Authenticate checks the provided credentials against the operator table and
// issues a JWT token on success.
func (a *Admin) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	operator, err := a.operators.GetOperator(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return "", ErrOperatorNotFound
		}
		return "", fmt.Errorf("get operator: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   operator.Username,
		Subject:    operator.ID,
		Expiration: 24,
	}
	token := a.jwtIssuer.Generate(tokenInfo)

	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	a.logs.Infow("operator authenticated", "username", operator.Username)

	return signed, nil
}
