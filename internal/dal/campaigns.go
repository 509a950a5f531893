package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type Campaign struct {
	ID                   string     `json:"id"`
	BotID                string     `json:"bot_id"`
	Message              string     `json:"message"`
	TargetLevels         []int      `json:"target_levels"`
	IsActive             bool       `json:"is_active"`
	SendAt               *time.Time `json:"send_at,omitempty"`
	StartsAt             *time.Time `json:"starts_at,omitempty"`
	Repeat               bool       `json:"repeat"`
	IntervalDays         int        `json:"interval_days,omitempty"`
	RequiresConfirmation bool       `json:"requires_confirmation"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (s *BoltDB) GetCampaign(id string) (Campaign, bool, error) {
	var res Campaign
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(campaignsBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllCampaigns(botID string) ([]Campaign, error) {
	var res []Campaign

	err := s.forEachCampaign(func(c Campaign) {
		if c.BotID == botID {
			res = append(res, c)
		}
	})

	return res, err
}

// GetDueCampaigns returns active campaigns scheduled at or before now.
// Campaigns without a send time are never due.
func (s *BoltDB) GetDueCampaigns(now time.Time) ([]Campaign, error) {
	var res []Campaign

	err := s.forEachCampaign(func(c Campaign) {
		if c.IsActive && c.SendAt != nil && !c.SendAt.After(now) {
			res = append(res, c)
		}
	})

	return res, err
}

func (s *BoltDB) PutCampaign(c Campaign) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(campaignsBucket))

		if existing := b.Get([]byte(c.ID)); existing != nil {
			var prev Campaign
			if err := json.Unmarshal(existing, &prev); err != nil {
				return fmt.Errorf("unmarshal existing campaign %s: %w", c.ID, err)
			}
			// make sure we do not override created at
			c.CreatedAt = prev.CreatedAt
		} else {
			c.CreatedAt = s.now()
		}
		c.UpdatedAt = s.now()

		data, err := json.Marshal(&c)
		if err != nil {
			return fmt.Errorf("marshal campaign %s: %w", c.ID, err)
		}
		if err := b.Put([]byte(c.ID), data); err != nil {
			return fmt.Errorf("put campaign %s: %w", c.ID, err)
		}

		return nil
	})
}

func (s *BoltDB) DeleteCampaign(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(campaignsBucket)).Delete([]byte(id)); err != nil {
			return fmt.Errorf("delete campaign %s: %w", id, err)
		}
		return nil
	})
}

func (s *BoltDB) forEachCampaign(fn func(Campaign)) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(campaignsBucket)).ForEach(func(_, v []byte) error {
			var c Campaign
			if err := json.Unmarshal(v, &c); err != nil {
				return fmt.Errorf("unmarshal campaign: %w", err)
			}
			fn(c)
			return nil
		})
	})
}
