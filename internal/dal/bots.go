package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type Bot struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Token          string     `json:"token"`
	Language       string     `json:"language"`
	IsEvent        bool       `json:"is_event"`
	EventName      string     `json:"event_name,omitempty"`
	EventDate      *time.Time `json:"event_date,omitempty"`
	WelcomeMessage string     `json:"welcome_message,omitempty"`
	SupportContact string     `json:"support_contact,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (s *BoltDB) CountBots() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(botsBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

func (s *BoltDB) GetBot(id string) (Bot, bool, error) {
	var res Bot
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(botsBucket)).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

func (s *BoltDB) GetAllBots() ([]Bot, error) {
	var res []Bot

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(botsBucket)).ForEach(func(_, v []byte) error {
			var bot Bot
			if err := json.Unmarshal(v, &bot); err != nil {
				return fmt.Errorf("unmarshal bot: %w", err)
			}
			res = append(res, bot)
			return nil
		})
	})

	return res, err
}

func (s *BoltDB) PutBot(bot Bot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(botsBucket))

		if existing := b.Get([]byte(bot.ID)); existing != nil {
			var prev Bot
			if err := json.Unmarshal(existing, &prev); err != nil {
				return fmt.Errorf("unmarshal existing bot %s: %w", bot.ID, err)
			}
			// make sure we do not override created at
			bot.CreatedAt = prev.CreatedAt
		} else {
			bot.CreatedAt = s.now()
		}
		bot.UpdatedAt = s.now()

		data, err := json.Marshal(&bot)
		if err != nil {
			return fmt.Errorf("marshal bot %s: %w", bot.ID, err)
		}
		if err := b.Put([]byte(bot.ID), data); err != nil {
			return fmt.Errorf("put bot %s: %w", bot.ID, err)
		}

		return nil
	})
}
