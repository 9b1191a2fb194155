package intent_test

import (
	"math/big"

	"textpay/internal/intent"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parser", func() {
	var (
		parser intent.Parser
		parsed intent.Intent
	)

	BeforeEach(func() {
		parser = intent.NewParser("234")
	})

	Describe("Parse", func() {
		var text string

		JustBeforeEach(func() {
			parsed = parser.Parse(text)
		})

		When("text is a well-formed send", func() {
			BeforeEach(func() {
				text = "send 10 USDC to +2348010000000"
			})

			It("should return a send intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindSend))
				Expect(parsed.Amount).To(Equal(big.NewInt(10_000_000)))
				Expect(parsed.Asset.Symbol).To(Equal("USDC"))
				Expect(parsed.Recipient).To(Equal("+2348010000000"))
			})
		})

		When("verb casing and particles vary", func() {
			BeforeEach(func() {
				text = "SEND 0.5 usdt 08010000000"
			})

			It("should still parse the send", func() {
				Expect(parsed.Kind).To(Equal(intent.KindSend))
				Expect(parsed.Amount).To(Equal(big.NewInt(500_000)))
				Expect(parsed.Recipient).To(Equal("+2348010000000"))
			})
		})

		When("text is a balance query", func() {
			BeforeEach(func() {
				text = "balance"
			})

			It("should return a balance intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindBalance))
			})
		})

		When("text is a stake command", func() {
			BeforeEach(func() {
				text = "stake 100 DAI"
			})

			It("should return a stake intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindStake))
				Expect(parsed.Asset.Symbol).To(Equal("DAI"))
			})
		})

		When("text is a swap command", func() {
			BeforeEach(func() {
				text = "swap 5 USDC for USDT"
			})

			It("should return a swap intent with both assets", func() {
				Expect(parsed.Kind).To(Equal(intent.KindSwap))
				Expect(parsed.Asset.Symbol).To(Equal("USDC"))
				Expect(parsed.ToAsset.Symbol).To(Equal("USDT"))
			})
		})

		When("text is a bridge command", func() {
			BeforeEach(func() {
				text = "bridge 2 USDT"
			})

			It("should return a bridge intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindBridge))
			})
		})

		When("verb is unrecognized", func() {
			BeforeEach(func() {
				text = "lend 10 USDC"
			})

			It("should return unknown with a reason", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
				Expect(parsed.Reason).NotTo(BeEmpty())
			})
		})

		When("send amount is invalid", func() {
			BeforeEach(func() {
				text = "send 0 USDC to +2348010000000"
			})

			It("should return unknown", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
			})
		})

		When("send asset is unsupported", func() {
			BeforeEach(func() {
				text = "send 10 DOGE to +2348010000000"
			})

			It("should return unknown", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
			})
		})

		When("send recipient is not a phone number", func() {
			BeforeEach(func() {
				text = "send 10 USDC to alice"
			})

			It("should return unknown", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
			})
		})

		When("text is empty", func() {
			BeforeEach(func() {
				text = "   "
			})

			It("should return unknown", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
			})
		})
	})

	Describe("ParseMenu", func() {
		var path string

		JustBeforeEach(func() {
			parsed = parser.ParseMenu(path)
		})

		When("path selects a send", func() {
			BeforeEach(func() {
				path = "1*10*USDC*+2348010000000"
			})

			It("should return a send intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindSend))
				Expect(parsed.Amount).To(Equal(big.NewInt(10_000_000)))
				Expect(parsed.Recipient).To(Equal("+2348010000000"))
			})
		})

		When("path selects balance", func() {
			BeforeEach(func() {
				path = "2"
			})

			It("should return a balance intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindBalance))
			})
		})

		When("path selects a swap", func() {
			BeforeEach(func() {
				path = "4*5*USDC*USDT"
			})

			It("should return a swap intent", func() {
				Expect(parsed.Kind).To(Equal(intent.KindSwap))
				Expect(parsed.ToAsset.Symbol).To(Equal("USDT"))
			})
		})

		When("send path misses a step", func() {
			BeforeEach(func() {
				path = "1*10*USDC"
			})

			It("should return unknown", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
			})
		})

		When("menu option is unrecognized", func() {
			BeforeEach(func() {
				path = "9*10*USDC"
			})

			It("should return unknown", func() {
				Expect(parsed.Kind).To(Equal(intent.KindUnknown))
			})
		})
	})
})
