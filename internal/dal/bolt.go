package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	botsBucket        = "bots"
	subscribersBucket = "subscribers"
	campaignsBucket   = "campaigns"
	resourcesBucket   = "resources"
)

// BoltDB is the bbolt-backed store for all funnel entities.
// Buckets are created by the migrations package before the store is constructed.
type BoltDB struct {
	db *bbolt.DB

	now func() time.Time
}

func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{botsBucket, subscribersBucket, campaignsBucket, resourcesBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %q not found; run migrations first", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BoltDB{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}
