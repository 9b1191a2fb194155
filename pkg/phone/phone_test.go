package phone_test

import (
	"textpay/pkg/phone"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Normalize", func() {
	var (
		raw         string
		countryCode string
		normalized  string
		err         error
	)

	BeforeEach(func() {
		countryCode = "234"
	})

	JustBeforeEach(func() {
		normalized, err = phone.Normalize(raw, countryCode)
	})

	When("number is already in E.164 form", func() {
		BeforeEach(func() {
			raw = "+2348010000000"
		})

		It("should return it unchanged", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(normalized).To(Equal("+2348010000000"))
		})
	})

	When("number uses the 00 international prefix", func() {
		BeforeEach(func() {
			raw = "002348010000000"
		})

		It("should convert to a plus prefix", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(normalized).To(Equal("+2348010000000"))
		})
	})

	When("number is national with a leading zero", func() {
		BeforeEach(func() {
			raw = "08010000000"
		})

		It("should prepend the default country code", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(normalized).To(Equal("+2348010000000"))
		})
	})

	When("number contains separators", func() {
		BeforeEach(func() {
			raw = "+234 (801) 000-00.00"
		})

		It("should strip them before validation", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(normalized).To(Equal("+2348010000000"))
		})
	})

	When("number is national but no country code is configured", func() {
		BeforeEach(func() {
			raw = "08010000000"
			countryCode = ""
		})

		It("should return malformed number error", func() {
			Expect(err).To(MatchError(phone.ErrMalformedNumber))
		})
	})

	When("number contains letters", func() {
		BeforeEach(func() {
			raw = "+234801abc0000"
		})

		It("should return malformed number error", func() {
			Expect(err).To(MatchError(phone.ErrMalformedNumber))
		})
	})

	When("number is too short", func() {
		BeforeEach(func() {
			raw = "+2348"
		})

		It("should return malformed number error", func() {
			Expect(err).To(MatchError(phone.ErrMalformedNumber))
		})
	})

	When("number is too long", func() {
		BeforeEach(func() {
			raw = "+2348010000000000000"
		})

		It("should return malformed number error", func() {
			Expect(err).To(MatchError(phone.ErrMalformedNumber))
		})
	})

	When("input is empty", func() {
		BeforeEach(func() {
			raw = "   "
		})

		It("should return malformed number error", func() {
			Expect(err).To(MatchError(phone.ErrMalformedNumber))
		})
	})
})

var _ = Describe("Looks", func() {
	It("accepts plus-prefixed digit runs", func() {
		Expect(phone.Looks("+2348010000000")).To(BeTrue())
	})

	It("accepts zero-prefixed national numbers", func() {
		Expect(phone.Looks("08010000000")).To(BeTrue())
	})

	It("rejects asset symbols", func() {
		Expect(phone.Looks("USDC")).To(BeFalse())
	})

	It("rejects short digit runs", func() {
		Expect(phone.Looks("+12345")).To(BeFalse())
	})
})
