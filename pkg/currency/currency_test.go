package currency_test

import (
	"math/big"

	"textpay/pkg/currency"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Lookup", func() {
	It("finds supported assets case-insensitively", func() {
		asset, err := currency.Lookup("usdc")
		Expect(err).NotTo(HaveOccurred())
		Expect(asset.Symbol).To(Equal("USDC"))
		Expect(asset.Decimals).To(Equal(6))
	})

	It("rejects unsupported assets", func() {
		_, err := currency.Lookup("DOGE")
		Expect(err).To(MatchError(currency.ErrUnknownAsset))
	})
})

var _ = Describe("ParseAmount", func() {
	var usdc, dai currency.Asset

	BeforeEach(func() {
		usdc, _ = currency.Lookup("USDC")
		dai, _ = currency.Lookup("DAI")
	})

	When("amount is a whole number", func() {
		It("scales to base units", func() {
			units, err := currency.ParseAmount("10", usdc)
			Expect(err).NotTo(HaveOccurred())
			Expect(units).To(Equal(big.NewInt(10_000_000)))
		})
	})

	When("amount has a fraction", func() {
		It("scales the fraction to base units", func() {
			units, err := currency.ParseAmount("0.25", usdc)
			Expect(err).NotTo(HaveOccurred())
			Expect(units).To(Equal(big.NewInt(250_000)))
		})
	})

	When("amount uses all decimal places", func() {
		It("parses exactly", func() {
			units, err := currency.ParseAmount("1.000001", usdc)
			Expect(err).NotTo(HaveOccurred())
			Expect(units).To(Equal(big.NewInt(1_000_001)))
		})
	})

	When("amount is zero", func() {
		It("should return invalid amount error", func() {
			_, err := currency.ParseAmount("0", usdc)
			Expect(err).To(MatchError(currency.ErrInvalidAmount))
		})
	})

	When("amount is negative", func() {
		It("should return invalid amount error", func() {
			_, err := currency.ParseAmount("-5", usdc)
			Expect(err).To(MatchError(currency.ErrInvalidAmount))
		})
	})

	When("amount exceeds the asset precision", func() {
		It("should return invalid amount error", func() {
			_, err := currency.ParseAmount("1.0000001", usdc)
			Expect(err).To(MatchError(currency.ErrInvalidAmount))
		})
	})

	When("amount is not a number", func() {
		It("should return invalid amount error", func() {
			_, err := currency.ParseAmount("ten", usdc)
			Expect(err).To(MatchError(currency.ErrInvalidAmount))
		})
	})

	When("asset has 18 decimals", func() {
		It("scales accordingly", func() {
			units, err := currency.ParseAmount("1.5", dai)
			Expect(err).NotTo(HaveOccurred())
			expected, _ := new(big.Int).SetString("1500000000000000000", 10)
			Expect(units).To(Equal(expected))
		})
	})
})

var _ = Describe("FormatAmount", func() {
	var usdc currency.Asset

	BeforeEach(func() {
		usdc, _ = currency.Lookup("USDC")
	})

	It("renders whole amounts without a fraction", func() {
		Expect(currency.FormatAmount(big.NewInt(10_000_000), usdc)).To(Equal("10"))
	})

	It("trims trailing fractional zeros", func() {
		Expect(currency.FormatAmount(big.NewInt(250_000), usdc)).To(Equal("0.25"))
	})

	It("keeps significant fractional digits", func() {
		Expect(currency.FormatAmount(big.NewInt(1_000_001), usdc)).To(Equal("1.000001"))
	})

	It("round-trips with ParseAmount", func() {
		units, err := currency.ParseAmount("12.34", usdc)
		Expect(err).NotTo(HaveOccurred())
		Expect(currency.FormatAmount(units, usdc)).To(Equal("12.34"))
	})
})
