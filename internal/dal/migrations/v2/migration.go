package v2

import (
	"go.etcd.io/bbolt"
)

var buckets = []string{
	"bots",
	"subscribers",
	"campaigns",
	"resources",
}

// MigrationV2 creates the entity buckets used by the funnel engine
type MigrationV2 struct{}

// Version returns the migration version
func (m *MigrationV2) Version() int {
	return 2
}

// Description returns a human-readable description of the migration
func (m *MigrationV2) Description() string {
	return "Create bots, subscribers, campaigns and resources buckets"
}

// Up performs the migration
func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
}

// New creates a new instance of MigrationV2
func New() *MigrationV2 {
	return &MigrationV2{}
}
