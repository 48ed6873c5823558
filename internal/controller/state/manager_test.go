package state

import (
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/controller/callbacks/callbacktypes"
	"github.com/stretchr/testify/assert"
)

func TestManager_StateLifecycle(t *testing.T) {
	sm := NewManager()
	const user int64 = 10

	assert.Equal(t, StateNone, sm.GetState(user))

	sm.SetState(user, StateEnteringPartySize)
	sm.SetData(user, DataPromptMessageID, 77)
	assert.Equal(t, StateEnteringPartySize, sm.GetState(user))

	id, ok := sm.GetInt(user, DataPromptMessageID)
	assert.True(t, ok)
	assert.Equal(t, 77, id)

	// смена состояния сохраняет данные
	sm.SetState(user, StateEnteringToken)
	_, ok = sm.GetInt(user, DataPromptMessageID)
	assert.True(t, ok)

	sm.SetState(user, StateNone)
	assert.Equal(t, StateNone, sm.GetState(user))
	_, ok = sm.GetData(user, DataPromptMessageID)
	assert.False(t, ok)
	assert.Zero(t, sm.Count())
}

func TestManager_GetIntWrongType(t *testing.T) {
	sm := NewManager()
	sm.SetData(1, "key", "not a number")

	_, ok := sm.GetInt(1, "key")
	assert.False(t, ok)
}

func TestManager_Forget(t *testing.T) {
	sm := NewManager()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	sm.now = func() time.Time { return now }

	sm.SetState(1, StateEnteringPartySize)
	now = now.Add(20 * time.Minute)
	sm.SetState(2, StateEnteringToken)
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, sm.Forget(30*time.Minute))
	assert.Equal(t, StateNone, sm.GetState(1))
	assert.Equal(t, StateEnteringToken, sm.GetState(2))

	// SetData продлевает жизнь диалога
	sm.SetData(2, DataPromptMessageID, 9)
	now = now.Add(25 * time.Minute)
	assert.Zero(t, sm.Forget(30*time.Minute))
	assert.Equal(t, 1, sm.Count())
}

func TestManager_ConcurrentAccess(t *testing.T) {
	sm := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			sm.SetState(id, StateEnteringToken)
			sm.SetData(id, "n", int(id))
			_ = sm.GetState(id)
			sm.ClearState(id)
		}(int64(i))
	}
	wg.Wait()

	assert.Zero(t, sm.Count())
}

func TestManagerSatisfiesCallbackStateManager(t *testing.T) {
	var sm callbacktypes.StateManager = NewManager()

	sm.SetState(5, StateEnteringPartySize)
	assert.Equal(t, callbacktypes.UserState("entering_party_size"), sm.GetState(5))

	sm.ClearState(5)
	assert.Equal(t, StateNone, sm.GetState(5))
}
