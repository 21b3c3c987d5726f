package chat

import (
	"context"
	"sync"

	"github.com/WardMate/ChatGuard/pkg/types"
)

//go:generate mockery --name=Bus --dir=. --output=./mocks --filename=bus_mock.go --case=underscore --with-expecter

// Bus is the real-time fan-out collaborator. Persistence and broadcast are
// its problem; the moderation core only hands it messages that survived the
// pipeline.
type Bus interface {
	Publish(ctx context.Context, msg types.Message) error
}

// MemoryBus is an in-process Bus for local development and tests:
// per-clinic subscriber channels, non-blocking delivery, slow subscribers
// lose messages rather than stalling the send path.
type MemoryBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan types.Message
	buffer      int
}

func NewMemoryBus(buffer int) *MemoryBus {
	if buffer <= 0 {
		buffer = 64
	}
	return &MemoryBus{
		subscribers: make(map[string][]chan types.Message),
		buffer:      buffer,
	}
}

func (b *MemoryBus) Subscribe(clinicID string) <-chan types.Message {
	ch := make(chan types.Message, b.buffer)
	b.mu.Lock()
	b.subscribers[clinicID] = append(b.subscribers[clinicID], ch)
	b.mu.Unlock()
	return ch
}

func (b *MemoryBus) Publish(_ context.Context, msg types.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subscribers[msg.ClinicID] {
		select {
		case ch <- msg:
		default:
		}
	}
	return nil
}
