package notify

import (
	"context"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// StateChannel carries partition names ("config", "progression",
// "history") whenever this service mutates persisted state. Other open
// sessions subscribe and refresh instead of silently overwriting.
const StateChannel = "gzclp::state-changed"

type Notifier struct {
	redisClient *redis.Client
}

func NewNotifier(redisClient *redis.Client) *Notifier {
	return &Notifier{redisClient: redisClient}
}

// StateChanged announces a mutation of the given partition. Fire and
// forget: a failed publish is logged, never surfaced, since losing a
// notification only delays another session's refresh.
func (n *Notifier) StateChanged(ctx context.Context, partition string) {
	cmd := n.redisClient.Publish(ctx, StateChannel, partition)
	if err := cmd.Err(); err != nil {
		log.Errorf("notify state changed [%s]: %s", partition, err)
	}
}

// Subscribe returns a channel of partition names published by other
// sessions. The returned close func must be called to release the
// subscription.
func (n *Notifier) Subscribe(ctx context.Context) (<-chan string, func() error) {
	pubsub := n.redisClient.Subscribe(ctx, StateChannel)

	partitions := make(chan string)
	go func() {
		defer close(partitions)
		for msg := range pubsub.Channel() {
			select {
			case partitions <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return partitions, pubsub.Close
}
