package state

import (
	"sync"
	"time"
)

// Manager хранит состояния диалогов в памяти.
// Удовлетворяет callbacktypes.StateManager.
type Manager struct {
	mu      sync.RWMutex
	dialogs map[int64]*dialog // telegramID -> dialog
	now     func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		dialogs: make(map[int64]*dialog),
		now:     time.Now,
	}
}

// touch возвращает диалог пользователя, создавая его при необходимости. Вызывать под mu.Lock
func (sm *Manager) touch(telegramID int64) *dialog {
	d, ok := sm.dialogs[telegramID]
	if !ok {
		d = &dialog{data: make(map[string]interface{})}
		sm.dialogs[telegramID] = d
	}
	d.touchedAt = sm.now()
	return d
}

// GetState текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if d, ok := sm.dialogs[telegramID]; ok {
		return d.state
	}
	return StateNone
}

// SetState переводит пользователя в состояние; StateNone завершает диалог
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.dialogs, telegramID)
		return
	}
	sm.touch(telegramID).state = state
}

func (sm *Manager) GetData(telegramID int64, key string) (interface{}, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	d, ok := sm.dialogs[telegramID]
	if !ok {
		return nil, false
	}
	value, ok := d.data[key]
	return value, ok
}

func (sm *Manager) SetData(telegramID int64, key string, value interface{}) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.touch(telegramID).data[key] = value
}

// GetInt целое значение из временных данных
func (sm *Manager) GetInt(telegramID int64, key string) (int, bool) {
	value, ok := sm.GetData(telegramID, key)
	if !ok {
		return 0, false
	}
	n, ok := value.(int)
	return n, ok
}

// ClearState очищает состояние и данные пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.dialogs, telegramID)
}

// Forget удаляет диалоги, брошенные дольше idle назад
func (sm *Manager) Forget(idle time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cutoff := sm.now().Add(-idle)
	removed := 0
	for id, d := range sm.dialogs {
		if d.touchedAt.Before(cutoff) {
			delete(sm.dialogs, id)
			removed++
		}
	}
	return removed
}

// Count количество пользователей с активным диалогом
func (sm *Manager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return len(sm.dialogs)
}
