package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"textpay/internal/core"
	"textpay/internal/http/handler"
	"textpay/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WebhookHandler", func() {
	var (
		wh             *handler.WebhookHandler
		fakeDispatcher *fake.MessageDispatcher
		fakeValidator  *fake.RequestValidator
		fakeLogger     *zap.SugaredLogger
		w              *httptest.ResponseRecorder
		req            *http.Request
		fakeErr        error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeDispatcher = new(fake.MessageDispatcher)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		wh = handler.NewWebhookHandler(fakeLogger, fakeValidator, fakeDispatcher, "234")
	})

	Describe("HandleWhatsApp", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"from":"08010000000","body":"balance","message_id":"wa-1"}`)
			req = httptest.NewRequest("POST", "/hooks/whatsapp", body)
			req.Header.Set("Content-Type", "application/json")

			fakeDispatcher.DispatchReturns(core.Ack{
				ToPhone: "+2348010000000",
				Text:    "Your balance: 10 USDC.",
			}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleWhatsApp(w, req)
		})

		When("the message is dispatched", func() {
			It("should return 202 with the reply text", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))

				var response map[string]any
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["text"]).To(Equal("Your balance: 10 USDC."))
				Expect(response["to"]).To(Equal("+2348010000000"))

				Expect(fakeDispatcher.DispatchCallCount()).To(Equal(1))
				_, argMsg := fakeDispatcher.DispatchArgsForCall(0)
				Expect(argMsg.Channel).To(Equal(core.ChannelWhatsApp))
				Expect(argMsg.Text).To(Equal("balance"))
				Expect(argMsg.MessageID).To(Equal("wa-1"))
			})

			It("should normalize the sender number before dispatching", func() {
				_, argMsg := fakeDispatcher.DispatchArgsForCall(0)
				Expect(argMsg.FromPhone).To(Equal("+2348010000000"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeDispatcher.DispatchCallCount()).To(Equal(0))
			})
		})

		When("the sender number is malformed", func() {
			BeforeEach(func() {
				body := strings.NewReader(`{"from":"not-a-number","body":"balance","message_id":"wa-1"}`)
				req = httptest.NewRequest("POST", "/hooks/whatsapp", body)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeDispatcher.DispatchCallCount()).To(Equal(0))
			})
		})

		When("the gateway connection is already gone", func() {
			BeforeEach(func() {
				cancelledCtx, cancel := context.WithCancel(context.Background())
				cancel()
				req = req.WithContext(cancelledCtx)
			})

			It("should still run the dispatch on a live context", func() {
				Expect(w.Code).To(Equal(http.StatusAccepted))

				Expect(fakeDispatcher.DispatchCallCount()).To(Equal(1))
				argCtx, _ := fakeDispatcher.DispatchArgsForCall(0)
				Expect(argCtx.Err()).NotTo(HaveOccurred())
			})
		})

		When("dispatching fails", func() {
			BeforeEach(func() {
				fakeDispatcher.DispatchReturns(core.Ack{}, fakeErr)
			})

			It("should return status 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleSMS", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"sender":"+2348010000000","text":"send 10 USDC to +2348020000000","message_id":"sms-1"}`)
			req = httptest.NewRequest("POST", "/hooks/sms", body)

			fakeDispatcher.DispatchReturns(core.Ack{
				ToPhone: "+2348010000000",
				Text:    "Sending 10 USDC to +2348020000000. We will confirm shortly.",
				Pending: true,
			}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSMS(w, req)
		})

		It("should dispatch on the sms channel", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))

			_, argMsg := fakeDispatcher.DispatchArgsForCall(0)
			Expect(argMsg.Channel).To(Equal(core.ChannelSMS))

			var response map[string]any
			decErr := json.NewDecoder(w.Body).Decode(&response)
			Expect(decErr).NotTo(HaveOccurred())
			Expect(response["pending"]).To(Equal(true))
		})
	})

	Describe("HandleUSSD", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"phone_number":"+2348010000000","session_id":"sess-1","text":"1*10*USDC*+2348020000000"}`)
			req = httptest.NewRequest("POST", "/hooks/ussd", body)

			fakeDispatcher.DispatchReturns(core.Ack{ToPhone: "+2348010000000", Text: "ok"}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleUSSD(w, req)
		})

		It("should carry the menu path and session id", func() {
			Expect(w.Code).To(Equal(http.StatusAccepted))

			_, argMsg := fakeDispatcher.DispatchArgsForCall(0)
			Expect(argMsg.Channel).To(Equal(core.ChannelUSSD))
			Expect(argMsg.MenuPath).To(Equal("1*10*USDC*+2348020000000"))
			Expect(argMsg.MessageID).To(Equal("sess-1"))
			Expect(argMsg.Text).To(BeEmpty())
		})
	})
})
