package chat_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/WardMate/ChatGuard/pkg/chat"
	"github.com/stretchr/testify/assert"
)

func TestHistoryStoreSnapshotOfUnknownSession(t *testing.T) {
	store := chat.NewHistoryStore(5)
	texts, lastAt := store.Snapshot("nobody")
	assert.Empty(t, texts)
	assert.True(t, lastAt.IsZero())
}

func TestHistoryStoreKeepsMostRecentWindow(t *testing.T) {
	store := chat.NewHistoryStore(3)
	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		store.Append("s1", fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	texts, lastAt := store.Snapshot("s1")
	assert.Equal(t, []string{"message 2", "message 3", "message 4"}, texts)
	assert.Equal(t, base.Add(4*time.Minute), lastAt)
}

func TestHistoryStoreIsolatesSessions(t *testing.T) {
	store := chat.NewHistoryStore(5)
	now := time.Now().UTC()
	store.Append("s1", "from s1", now)
	store.Append("s2", "from s2", now)

	texts, _ := store.Snapshot("s1")
	assert.Equal(t, []string{"from s1"}, texts)
}

func TestHistoryStoreSnapshotIsACopy(t *testing.T) {
	store := chat.NewHistoryStore(5)
	now := time.Now().UTC()
	store.Append("s1", "original", now)

	texts, _ := store.Snapshot("s1")
	texts[0] = "mutated"

	again, _ := store.Snapshot("s1")
	assert.Equal(t, []string{"original"}, again)
}
