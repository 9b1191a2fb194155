package core_test

import (
	"context"
	"errors"

	"textpay/internal/core"
	"textpay/internal/core/fake"
	"textpay/internal/repository"
	tokenIssuer "textpay/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Admin", func() {
	var (
		fakeOperators *fake.OperatorStore
		fakeJWT       *fake.JWTIssuer
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		admin *core.Admin

		fakeErr error
	)

	BeforeEach(func() {
		fakeOperators = new(fake.OperatorStore)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		admin = core.NewAdmin(fakeLogger, fakeOperators, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			operatorId     string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			operatorId = "op-1"
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "admin",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = admin.Authenticate(ctx, authMsg)
		})

		When("operator exists and password matches", func() {
			BeforeEach(func() {
				fakeOperators.GetOperatorReturns(repository.Operator{
					ID:           operatorId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeOperators.GetOperatorCallCount()).To(Equal(1))
				_, argUsername := fakeOperators.GetOperatorArgsForCall(0)
				Expect(argUsername).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    operatorId,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("operator does not exist", func() {
			BeforeEach(func() {
				fakeOperators.GetOperatorReturns(repository.Operator{}, repository.ErrOperatorNotFound)
			})

			It("should return operator not found error", func() {
				Expect(err).To(MatchError(core.ErrOperatorNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeOperators.GetOperatorReturns(repository.Operator{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeOperators.GetOperatorReturns(repository.Operator{
					ID:           operatorId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
