package service

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/Roma7-7-7/funnel-bot/internal/dal"
)

type (
	ResourceStore interface {
		GetResourcesByBot(botID string) ([]dal.Resource, error)
		TryIncrementResourceAssigned(id string, expected int) (bool, error)
		ResetResourceAssigned(botID string) error
	}

	// Allocator fairly distributes a finite pool of referral resources across
	// new subscribers. Each resource carries a share (capacity); once every
	// resource has reached its share the counts are reset and a new round
	// starts, so early resources are never starved.
	Allocator struct {
		resources   ResourceStore
		subscribers SubscriberStore

		intN func(n int) int

		log *slog.Logger
	}
)

func NewAllocator(resources ResourceStore, subscribers SubscriberStore, log *slog.Logger) *Allocator {
	return &Allocator{
		resources:   resources,
		subscribers: subscribers,
		intN:        rand.IntN,
		log:         log.With("component", "service").With("service", "allocator"),
	}
}

// Assign picks a uniformly random non-exhausted resource of the bot and stores
// its value on the subscriber. An empty pool is a no-op, not an error. The whole
// operation is a bounded loop: at most one round reset, then one draw per
// resource, each committed with a compare-and-increment so concurrent sign-ups
// cannot over-allocate the same resource.
func (s *Allocator) Assign(botID, subscriberID string) error {
	pool, err := s.loadPool(botID)
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		s.log.Debug("No resources configured", "botID", botID)
		return nil
	}

	if len(available(pool)) == 0 {
		s.log.Info("Resource pool exhausted, starting new round", "botID", botID)
		if err := s.resources.ResetResourceAssigned(botID); err != nil {
			return fmt.Errorf("reset resources: %w", err)
		}
		if pool, err = s.loadPool(botID); err != nil {
			return err
		}
	}

	// every compare-and-increment miss removes at least one candidate, so one
	// extra attempt per resource is enough
	for attempt := 0; attempt <= len(pool); attempt++ {
		candidates := available(pool)
		if len(candidates) == 0 {
			break
		}

		pick := candidates[s.intN(len(candidates))]
		ok, err := s.resources.TryIncrementResourceAssigned(pick.ID, pick.AssignedCount)
		if err != nil {
			return fmt.Errorf("increment resource %s: %w", pick.ID, err)
		}
		if !ok {
			// lost a concurrent race; retry with fresh counts
			if pool, err = s.loadPool(botID); err != nil {
				return err
			}
			continue
		}

		return s.storeAssignment(subscriberID, pick.Value)
	}

	s.log.Warn("No assignable resource found", "botID", botID, "subscriberID", subscriberID)
	return nil
}

func (s *Allocator) loadPool(botID string) ([]dal.Resource, error) {
	all, err := s.resources.GetResourcesByBot(botID)
	if err != nil {
		return nil, fmt.Errorf("get resources: %w", err)
	}

	pool := make([]dal.Resource, 0, len(all))
	for _, r := range all {
		if r.Share > 0 {
			pool = append(pool, r)
		}
	}
	return pool, nil
}

func (s *Allocator) storeAssignment(subscriberID, value string) error {
	sub, ok, err := s.subscribers.GetSubscriber(subscriberID)
	if err != nil {
		return fmt.Errorf("get subscriber: %w", err)
	}
	if !ok {
		return fmt.Errorf("subscriber %s: %w", subscriberID, ErrSubscriberNotFound)
	}

	sub.AssignedResource = value
	if err := s.subscribers.PutSubscriber(sub); err != nil {
		return fmt.Errorf("put subscriber: %w", err)
	}
	return nil
}

func available(pool []dal.Resource) []dal.Resource {
	res := make([]dal.Resource, 0, len(pool))
	for _, r := range pool {
		if r.AssignedCount < r.Share {
			res = append(res, r)
		}
	}
	return res
}
