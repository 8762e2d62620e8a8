package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Categorize", func() {
	var (
		merchant string
		items    []string
		category Category
	)

	JustBeforeEach(func() {
		category = Categorize(merchant, items)
	})

	When("the merchant matches a food keyword", func() {
		BeforeEach(func() {
			merchant = "CAFE COFFEE DAY"
			items = nil
		})

		It("returns Food & Dining", func() {
			Expect(category).To(Equal(CategoryFoodAndDining))
		})
	})

	When("only the items match", func() {
		BeforeEach(func() {
			merchant = "QUICK STOP"
			items = []string{"Petrol litres"}
		})

		It("returns Transportation", func() {
			Expect(category).To(Equal(CategoryTransportation))
		})
	})

	When("keywords from two categories both match", func() {
		BeforeEach(func() {
			// "cafe" (Food & Dining) is declared before "store" (Shopping).
			merchant = "Cafe Store"
			items = nil
		})

		It("resolves by declaration order, not specificity", func() {
			Expect(category).To(Equal(CategoryFoodAndDining))
		})
	})

	When("matching is case-insensitive", func() {
		BeforeEach(func() {
			merchant = "APOLLO PHARMACY"
			items = nil
		})

		It("returns Healthcare", func() {
			Expect(category).To(Equal(CategoryHealthcare))
		})
	})

	When("nothing matches", func() {
		BeforeEach(func() {
			merchant = "zzqx"
			items = []string{"unmapped thing"}
		})

		It("falls back to Others", func() {
			Expect(category).To(Equal(CategoryOthers))
		})
	})

	When("both inputs are empty", func() {
		BeforeEach(func() {
			merchant = ""
			items = nil
		})

		It("still returns a category", func() {
			Expect(category).To(Equal(CategoryOthers))
		})
	})
})

var _ = Describe("scoreConfidence", func() {
	It("allocates 40/30/20/10 across the four fields", func() {
		Expect(scoreConfidence(true, false, false, false)).To(Equal(40))
		Expect(scoreConfidence(false, true, false, false)).To(Equal(30))
		Expect(scoreConfidence(false, false, true, false)).To(Equal(20))
		Expect(scoreConfidence(false, false, false, true)).To(Equal(10))
	})

	It("sums to exactly 100 when everything is present", func() {
		Expect(scoreConfidence(true, true, true, true)).To(Equal(100))
	})

	It("scores zero when nothing is present", func() {
		Expect(scoreConfidence(false, false, false, false)).To(Equal(0))
	})
})
