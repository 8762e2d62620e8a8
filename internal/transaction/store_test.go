package transaction

import (
	"errors"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spendlens/spendlens/internal/extract"
)

var _ = Describe("BoltStore", func() {
	var (
		tmpDir string
		dbPath string
		store  *BoltStore
	)

	BeforeEach(func() {
		tmpDir = GinkgoT().TempDir()
		dbPath = filepath.Join(tmpDir, "test.db")
		var err error
		store, err = NewBoltStore(dbPath)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if store != nil {
			store.Close()
		}
	})

	Describe("SaveTransaction", func() {
		var (
			txn *Transaction
			err error
		)

		BeforeEach(func() {
			txn = &Transaction{
				ID:          "test-id",
				Merchant:    "CAFE COFFEE DAY",
				Description: "Purchase at CAFE COFFEE DAY - Cappuccino",
				Category:    extract.CategoryFoodAndDining,
				Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Amount:      12000,
				Items:       []string{"Cappuccino"},
				Confidence:  100,
				Filename:    "test.jpg",
				ContentType: "image/jpeg",
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
		})

		JustBeforeEach(func() {
			err = store.SaveTransaction(txn)
		})

		When("saving succeeds", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should save the transaction to the store", func() {
				saved, getErr := store.GetTransaction("test-id")
				Expect(getErr).NotTo(HaveOccurred())
				Expect(saved.ID).To(Equal("test-id"))
			})
		})
	})

	Describe("GetTransaction", func() {
		var (
			txnID string
			txn   *Transaction
			err   error
		)

		JustBeforeEach(func() {
			txn, err = store.GetTransaction(txnID)
		})

		When("transaction exists", func() {
			BeforeEach(func() {
				txnID = "test-id"
				testTxn := &Transaction{
					ID:         "test-id",
					Merchant:   "CAFE COFFEE DAY",
					Category:   extract.CategoryFoodAndDining,
					Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
					Amount:     12000,
					Items:      []string{"Cappuccino"},
					Confidence: 100,
					CreatedAt:  time.Now(),
					UpdatedAt:  time.Now(),
				}
				Expect(store.SaveTransaction(testTxn)).NotTo(HaveOccurred())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return the correct transaction ID", func() {
				Expect(txn.ID).To(Equal("test-id"))
			})

			It("should return the correct merchant", func() {
				Expect(txn.Merchant).To(Equal("CAFE COFFEE DAY"))
			})

			It("should round-trip the category", func() {
				Expect(txn.Category).To(Equal(extract.CategoryFoodAndDining))
			})

			It("should round-trip the items", func() {
				Expect(txn.Items).To(Equal([]string{"Cappuccino"}))
			})

			It("should return the correct amount", func() {
				Expect(txn.Amount).To(Equal(12000))
			})
		})

		When("transaction does not exist", func() {
			var expectedErr error

			BeforeEach(func() {
				txnID = "nonexistent"
				expectedErr = errors.New("transaction not found: nonexistent")
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(expectedErr))
			})
		})
	})

	Describe("ListTransactions", func() {
		var (
			txns []*Transaction
			err  error
		)

		JustBeforeEach(func() {
			txns, err = store.ListTransactions()
		})

		When("transactions exist", func() {
			BeforeEach(func() {
				txn1 := &Transaction{
					ID:        "id1",
					Merchant:  "Merchant 1",
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				txn2 := &Transaction{
					ID:        "id2",
					Merchant:  "Merchant 2",
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				Expect(store.SaveTransaction(txn1)).NotTo(HaveOccurred())
				Expect(store.SaveTransaction(txn2)).NotTo(HaveOccurred())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return all transactions", func() {
				Expect(txns).To(HaveLen(2))
			})
		})

		When("no transactions exist", func() {
			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should return an empty list", func() {
				Expect(txns).To(BeEmpty())
			})
		})
	})

	Describe("DeleteTransaction", func() {
		var (
			txnID string
			err   error
		)

		JustBeforeEach(func() {
			err = store.DeleteTransaction(txnID)
		})

		When("transaction exists", func() {
			BeforeEach(func() {
				txnID = "test-id"
				txn := &Transaction{
					ID:        "test-id",
					Merchant:  "Test",
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}
				Expect(store.SaveTransaction(txn)).NotTo(HaveOccurred())
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})

			It("should remove the transaction from the store", func() {
				_, getErr := store.GetTransaction("test-id")
				Expect(getErr).To(HaveOccurred())
			})
		})

		When("transaction does not exist", func() {
			BeforeEach(func() {
				txnID = "nonexistent"
			})

			It("should not return an error", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("Close", func() {
		It("should not return an error", func() {
			err := store.Close()
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
