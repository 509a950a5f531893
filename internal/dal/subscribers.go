package dal

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"go.etcd.io/bbolt"
)

// TerminalTemplateID marks a subscriber that has no further template to receive
// within the current level. Such subscribers stay inert until advanced externally.
const TerminalTemplateID = -1

type Subscriber struct {
	ID               string     `json:"id"`
	BotID            string     `json:"bot_id"`
	ChatID           int64      `json:"chat_id"`
	Name             string     `json:"name,omitempty"`
	ClientLevel      int        `json:"client_level"`
	NextTemplateID   int        `json:"next_template_id"`
	NextSendAt       *time.Time `json:"next_send_at,omitempty"`
	AssignedResource string     `json:"assigned_resource,omitempty"`
	Rating           int        `json:"rating,omitempty"`
	ReferenceText    string     `json:"reference_text,omitempty"`
	// ParkedAt is set when the chat became unreachable (bot blocked, account
	// deactivated). Parked subscribers are excluded from dispatch and from
	// campaign audiences; a terminal template pointer alone only means the
	// funnel ran out of messages.
	ParkedAt *time.Time `json:"parked_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (s *BoltDB) CountSubscribers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(subscribersBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) GetSubscriber(id string) (Subscriber, bool, error) {
	var res Subscriber
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(subscribersBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// FindSubscriberByChat looks a subscriber up by its (bot, chat) identity.
func (s *BoltDB) FindSubscriberByChat(botID string, chatID int64) (Subscriber, bool, error) {
	var res Subscriber
	found := false

	err := s.forEachSubscriber(func(sub Subscriber) {
		if !found && sub.BotID == botID && sub.ChatID == chatID {
			res = sub
			found = true
		}
	})

	return res, found, err
}

// GetDueSubscribers returns subscribers whose next send time has passed.
// A nil NextSendAt means "due immediately"; terminal subscribers are excluded.
func (s *BoltDB) GetDueSubscribers(now time.Time) ([]Subscriber, error) {
	var res []Subscriber

	err := s.forEachSubscriber(func(sub Subscriber) {
		if sub.NextTemplateID == TerminalTemplateID || sub.ParkedAt != nil {
			return
		}
		if sub.NextSendAt == nil || !sub.NextSendAt.After(now) {
			res = append(res, sub)
		}
	})

	return res, err
}

// GetSubscribersByLevels returns the bot's subscribers whose client level is in
// levels. Parked subscribers are left out: their chats are known unreachable and
// re-attempting them would fail on every campaign cycle.
func (s *BoltDB) GetSubscribersByLevels(botID string, levels []int) ([]Subscriber, error) {
	var res []Subscriber

	err := s.forEachSubscriber(func(sub Subscriber) {
		if sub.ParkedAt != nil {
			return
		}
		if sub.BotID == botID && slices.Contains(levels, sub.ClientLevel) {
			res = append(res, sub)
		}
	})

	return res, err
}

func (s *BoltDB) PutSubscriber(sub Subscriber) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))

		if existing := b.Get([]byte(sub.ID)); existing != nil {
			var prev Subscriber
			if err := json.Unmarshal(existing, &prev); err != nil {
				return fmt.Errorf("unmarshal existing subscriber %s: %w", sub.ID, err)
			}
			// make sure we do not override created at
			sub.CreatedAt = prev.CreatedAt
		} else {
			sub.CreatedAt = s.now()
		}
		sub.UpdatedAt = s.now()

		data, err := json.Marshal(&sub)
		if err != nil {
			return fmt.Errorf("marshal subscriber %s: %w", sub.ID, err)
		}
		if err := b.Put([]byte(sub.ID), data); err != nil {
			return fmt.Errorf("put subscriber %s: %w", sub.ID, err)
		}

		return nil
	})
}

func (s *BoltDB) PurgeSubscriber(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(subscribersBucket)).Delete([]byte(id)); err != nil {
			return fmt.Errorf("delete subscriber %s: %w", id, err)
		}
		return nil
	})
}

func (s *BoltDB) forEachSubscriber(fn func(Subscriber)) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscribersBucket)).ForEach(func(_, v []byte) error {
			var sub Subscriber
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscriber: %w", err)
			}
			fn(sub)
			return nil
		})
	})
}
