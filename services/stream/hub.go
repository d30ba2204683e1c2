// Package stream fans collection change notifications out to live
// subscribers. Writers announce a change after every successful store
// write; subscribers get a coalesced signal and re-fetch the full
// collection, which mirrors the snapshot-push behaviour the web clients
// were built against.
package stream

import (
	"context"
	"sync"

	"growlytics/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Collections that can be subscribed to.
const (
	CollectionPlants    = "plants"
	CollectionReminders = "reminders"
	CollectionTasks     = "tasks"
	CollectionSettings  = "settings"
)

// ValidCollection reports whether name is a subscribable collection.
func ValidCollection(name string) bool {
	switch name {
	case CollectionPlants, CollectionReminders, CollectionTasks, CollectionSettings:
		return true
	}
	return false
}

// Hub routes change notifications through redis pub/sub so every server
// instance sees writes made on any of them.
type Hub struct {
	client *redis.Client
}

// NewHub returns a Hub backed by the given redis client.
func NewHub(client *redis.Client) *Hub {
	return &Hub{client: client}
}

func channelName(userID, collection string) string {
	return "stream:" + userID + ":" + collection
}

// Publish announces that a user's collection changed. Failures are logged
// and swallowed; a missed notification only delays the next snapshot. A
// nil hub drops the notification entirely.
func (h *Hub) Publish(ctx context.Context, userID, collection string) {
	if h == nil || h.client == nil {
		return
	}
	if err := h.client.Publish(ctx, channelName(userID, collection), "changed").Err(); err != nil {
		utils.GetLogger().Warn("stream: publish failed",
			zap.String("collection", collection), zap.Error(err))
	}
}

// Subscription is a live handle on one user's collection. Events delivers
// a coalesced signal per change; the consumer owns the lifecycle and must
// call Close when done.
type Subscription struct {
	Events <-chan struct{}

	pubsub *redis.PubSub
	once   sync.Once
}

// Close tears the subscription down. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.pubsub.Close()
	})
}

// Subscribe registers for change notifications on one user collection.
func (h *Hub) Subscribe(ctx context.Context, userID, collection string) (*Subscription, error) {
	pubsub := h.client.Subscribe(ctx, channelName(userID, collection))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		for range pubsub.Channel() {
			select {
			case events <- struct{}{}:
			default: // a signal is already pending, coalesce
			}
		}
	}()

	return &Subscription{Events: events, pubsub: pubsub}, nil
}
