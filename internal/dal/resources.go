package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type Resource struct {
	ID            string    `json:"id"`
	BotID         string    `json:"bot_id"`
	Label         string    `json:"label"`
	Value         string    `json:"value"`
	Share         int       `json:"share"`
	AssignedCount int       `json:"assigned_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *BoltDB) GetResource(id string) (Resource, bool, error) {
	var res Resource
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(resourcesBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetResourcesByBot(botID string) ([]Resource, error) {
	var res []Resource

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(resourcesBucket)).ForEach(func(_, v []byte) error {
			var r Resource
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal resource: %w", err)
			}
			if r.BotID == botID {
				res = append(res, r)
			}
			return nil
		})
	})

	return res, err
}

func (s *BoltDB) PutResource(r Resource) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(resourcesBucket))

		if existing := b.Get([]byte(r.ID)); existing != nil {
			var prev Resource
			if err := json.Unmarshal(existing, &prev); err != nil {
				return fmt.Errorf("unmarshal existing resource %s: %w", r.ID, err)
			}
			// make sure we do not override created at
			r.CreatedAt = prev.CreatedAt
		} else {
			r.CreatedAt = s.now()
		}
		r.UpdatedAt = s.now()

		data, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal resource %s: %w", r.ID, err)
		}
		if err := b.Put([]byte(r.ID), data); err != nil {
			return fmt.Errorf("put resource %s: %w", r.ID, err)
		}

		return nil
	})
}

func (s *BoltDB) DeleteResource(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(resourcesBucket)).Delete([]byte(id)); err != nil {
			return fmt.Errorf("delete resource %s: %w", id, err)
		}
		return nil
	})
}

// TryIncrementResourceAssigned increments AssignedCount if it still equals expected
// and has not reached Share. The read and the write happen in a single update
// transaction, so two concurrent assignments cannot both claim the last slot.
func (s *BoltDB) TryIncrementResourceAssigned(id string, expected int) (bool, error) {
	ok := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(resourcesBucket))
		data := b.Get([]byte(id))
		if data == nil {
			return nil
		}

		var r Resource
		if err := json.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("unmarshal resource %s: %w", id, err)
		}

		if r.AssignedCount != expected || r.AssignedCount >= r.Share {
			return nil
		}

		r.AssignedCount++
		r.UpdatedAt = s.now()

		updated, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal resource %s: %w", id, err)
		}
		if err := b.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("put resource %s: %w", id, err)
		}

		ok = true
		return nil
	})

	return ok, err
}

// ResetResourceAssigned zeroes AssignedCount for all of the bot's resources in one
// transaction. Used by the allocator to start a new distribution round once every
// resource has reached its share.
func (s *BoltDB) ResetResourceAssigned(botID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(resourcesBucket))

		type entry struct {
			key  []byte
			data []byte
		}
		var updates []entry

		err := b.ForEach(func(k, v []byte) error {
			var r Resource
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshal resource: %w", err)
			}
			if r.BotID != botID || r.AssignedCount == 0 {
				return nil
			}

			r.AssignedCount = 0
			r.UpdatedAt = s.now()
			data, err := json.Marshal(&r)
			if err != nil {
				return fmt.Errorf("marshal resource %s: %w", r.ID, err)
			}
			updates = append(updates, entry{key: append([]byte(nil), k...), data: data})
			return nil
		})
		if err != nil {
			return err
		}

		for _, u := range updates {
			if err := b.Put(u.key, u.data); err != nil {
				return fmt.Errorf("put resource %s: %w", u.key, err)
			}
		}

		return nil
	})
}
