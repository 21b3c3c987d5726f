package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/WardMate/ChatGuard/pkg/chat"
	"github.com/WardMate/ChatGuard/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMemoryBusDeliversToClinicSubscribers(t *testing.T) {
	bus := chat.NewMemoryBus(4)
	ch := bus.Subscribe("clinic-1")
	other := bus.Subscribe("clinic-2")

	err := bus.Publish(context.Background(), types.Message{ID: "m1", ClinicID: "clinic-1"})
	assert.NoError(t, err)

	select {
	case msg := <-ch:
		assert.Equal(t, "m1", msg.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a delivered message")
	}

	select {
	case msg := <-other:
		t.Fatalf("clinic-2 subscriber must not receive clinic-1 traffic, got %q", msg.ID)
	default:
	}
}

func TestMemoryBusDropsWhenSubscriberIsFull(t *testing.T) {
	bus := chat.NewMemoryBus(1)
	ch := bus.Subscribe("clinic-1")

	assert.NoError(t, bus.Publish(context.Background(), types.Message{ID: "m1", ClinicID: "clinic-1"}))
	assert.NoError(t, bus.Publish(context.Background(), types.Message{ID: "m2", ClinicID: "clinic-1"}))

	msg := <-ch
	assert.Equal(t, "m1", msg.ID)
	select {
	case msg := <-ch:
		t.Fatalf("overflow message should have been dropped, got %q", msg.ID)
	default:
	}
}

func TestMemoryBusPublishWithoutSubscribers(t *testing.T) {
	bus := chat.NewMemoryBus(4)
	assert.NoError(t, bus.Publish(context.Background(), types.Message{ID: "m1", ClinicID: "empty-clinic"}))
}
