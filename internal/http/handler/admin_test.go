package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"textpay/internal/core"
	"textpay/internal/http/handler"
	"textpay/internal/http/handler/fake"
	"textpay/internal/ratelimit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("AdminHandler", func() {
	var (
		ah            *handler.AdminHandler
		fakeAdmin     *fake.AdminService
		fakeLimiter   *fake.LimiterAdmin
		fakeTokens    *fake.TokenValidator
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeAdmin = new(fake.AdminService)
		fakeLimiter = new(fake.LimiterAdmin)
		fakeTokens = new(fake.TokenValidator)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ah = handler.NewAdminHandler(fakeLogger, fakeValidator, fakeAdmin, fakeLimiter, fakeTokens)
	})

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"admin","password":"testpass"}`)
			req = httptest.NewRequest("POST", "/admin/authenticate", body)

			fakeAdmin.AuthenticateReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			ah.HandleAuthenticate(w, req)
		})

		When("credentials are valid", func() {
			It("should return the token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal("signed.token"))

				Expect(fakeAdmin.AuthenticateCallCount()).To(Equal(1))
				_, argMsg := fakeAdmin.AuthenticateArgsForCall(0)
				Expect(argMsg.Username).To(Equal("admin"))
				Expect(argMsg.Password).To(Equal("testpass"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeAdmin.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the operator does not exist", func() {
			BeforeEach(func() {
				fakeAdmin.AuthenticateReturns("", core.ErrOperatorNotFound)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrOperatorNotFound.Error()))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeAdmin.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrIncorrectPassword.Error()))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeAdmin.AuthenticateReturns("", fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleStats", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/admin/stats", nil)
			req.Header.Set("AUTH_TOKEN", "valid.token")

			fakeLimiter.GlobalStatsReturns(ratelimit.Stats{
				TotalMessagesToday: 42,
				ActiveUsers:        7,
				NearLimitUsers:     1,
			}, nil)
		})

		JustBeforeEach(func() {
			ah.HandleStats(w, req)
		})

		When("the token is valid", func() {
			It("should return the aggregated counters", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["total_messages_today"]).To(BeEquivalentTo(42))
				Expect(response["active_users"]).To(BeEquivalentTo(7))
				Expect(response["near_limit_users"]).To(BeEquivalentTo(1))

				Expect(fakeTokens.ValidateCallCount()).To(Equal(1))
				Expect(fakeTokens.ValidateArgsForCall(0)).To(Equal("valid.token"))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("AUTH_TOKEN header is required"))
				Expect(fakeLimiter.GlobalStatsCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(nil, fakeErr)
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("invalid token"))
				Expect(fakeLimiter.GlobalStatsCallCount()).To(Equal(0))
			})
		})

		When("the limiter store is unreachable", func() {
			BeforeEach(func() {
				fakeLimiter.GlobalStatsReturns(ratelimit.Stats{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleResetLimits", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/admin/reset-limits", nil)
			req.Header.Set("AUTH_TOKEN", "valid.token")

			fakeLimiter.ResetAllCountersReturns(ratelimit.ResetSummary{
				ResetCount: 5,
				DailyLimit: 20,
			}, nil)
		})

		JustBeforeEach(func() {
			ah.HandleResetLimits(w, req)
		})

		When("the token is valid", func() {
			It("should reset counters and report the summary", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["reset_count"]).To(BeEquivalentTo(5))
				Expect(response["daily_limit"]).To(BeEquivalentTo(20))

				Expect(fakeLimiter.ResetAllCountersCallCount()).To(Equal(1))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return status 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeLimiter.ResetAllCountersCallCount()).To(Equal(0))
			})
		})

		When("resetting fails", func() {
			BeforeEach(func() {
				fakeLimiter.ResetAllCountersReturns(ratelimit.ResetSummary{}, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
