package transaction

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "transactions"

// Store defines the interface for transaction persistence
type Store interface {
	// SaveTransaction saves a transaction
	SaveTransaction(txn *Transaction) error

	// GetTransaction retrieves a transaction by ID
	GetTransaction(id string) (*Transaction, error)

	// ListTransactions returns all transactions
	ListTransactions() ([]*Transaction, error)

	// DeleteTransaction removes a transaction
	DeleteTransaction(id string) error

	// Close closes the store
	Close() error
}

// BoltStore implements the Store interface using BoltDB
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore creates a new BoltStore instance
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// SaveTransaction saves a transaction
func (b *BoltStore) SaveTransaction(txn *Transaction) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data, err := json.Marshal(txn)
		if err != nil {
			return fmt.Errorf("marshaling transaction: %w", err)
		}
		return bucket.Put([]byte(txn.ID), data)
	})
}

// GetTransaction retrieves a transaction by ID
func (b *BoltStore) GetTransaction(id string) (*Transaction, error) {
	var txn *Transaction
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		data := bucket.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("transaction not found: %s", id)
		}
		return json.Unmarshal(data, &txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns all transactions
func (b *BoltStore) ListTransactions() ([]*Transaction, error) {
	txns := make([]*Transaction, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		return bucket.ForEach(func(k, v []byte) error {
			var txn Transaction
			if err := json.Unmarshal(v, &txn); err != nil {
				return fmt.Errorf("unmarshaling transaction: %w", err)
			}
			txns = append(txns, &txn)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// DeleteTransaction removes a transaction
func (b *BoltStore) DeleteTransaction(id string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		return bucket.Delete([]byte(id))
	})
}

// Close closes the store
func (b *BoltStore) Close() error {
	return b.db.Close()
}
