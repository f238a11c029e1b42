package pubsub_test

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/jumbohome/jumbo-monitor/pkg/pubsub"
	"github.com/stretchr/testify/assert"
)

func TestPublisher(t *testing.T) {
	p := pubsub.New[int](slog.Default())
	assert.Zero(t, p.Subscribers())

	const subscribers = 5
	var wg sync.WaitGroup
	var received sync.Map
	channels := make([]<-chan int, subscribers)
	for i := range subscribers {
		channels[i] = p.Subscribe()
		wg.Add(1)
		go func(ch <-chan int, id int) {
			defer wg.Done()
			received.Store(id, <-ch)
		}(channels[i], i)
	}
	assert.Equal(t, subscribers, p.Subscribers())

	p.Publish(42)
	wg.Wait()

	for i := range subscribers {
		value, ok := received.Load(i)
		assert.True(t, ok)
		assert.Equal(t, 42, value)
	}

	for _, ch := range channels {
		p.Unsubscribe(ch)
	}
	assert.Zero(t, p.Subscribers())
}
