package v1

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV1 is the bootstrap migration that verifies the migrations bucket
type MigrationV1 struct{}

// Version returns the migration version
func (m *MigrationV1) Version() int {
	return 1
}

// Description returns a human-readable description of the migration
func (m *MigrationV1) Description() string {
	return "Bootstrap migration system - verify migrations bucket"
}

// Up performs the migration
func (m *MigrationV1) Up(db *bbolt.DB) error {
	// The migrations bucket is created by the runner before any migration runs;
	// this migration only marks that the migration system is initialized.
	return db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte("migrations")) == nil {
			return fmt.Errorf("migrations bucket not found during v1 migration")
		}
		return nil
	})
}

// New creates a new instance of MigrationV1
func New() *MigrationV1 {
	return &MigrationV1{}
}
