package service

import (
	"sync"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/selector"
)

// session попытка брони в одном чате. Владеет своим селектором.
type session struct {
	mu sync.Mutex

	selector   *selector.Selector
	partySize  int
	date       string
	tableID    int
	generation uint64 // растёт при каждой перезагрузке слотов
	loading    bool
	messageID  int
	touchedAt  time.Time
}

func newSession(now time.Time) *session {
	return &session{
		selector:  selector.New(),
		touchedAt: now,
	}
}

// Snapshot состояние попытки брони для отрисовки
type Snapshot struct {
	PartySize int
	Date      string
	TableID   int
	Loading   bool
	MessageID int
	View      selector.View
}

func (s *session) snapshot() Snapshot {
	return Snapshot{
		PartySize: s.partySize,
		Date:      s.date,
		TableID:   s.tableID,
		Loading:   s.loading,
		MessageID: s.messageID,
		View:      s.selector.View(),
	}
}

// sessionStore сессии по chat ID
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*session)}
}

func (st *sessionStore) getOrCreate(chatID int64, now time.Time) *session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[chatID]
	if !ok {
		sess = newSession(now)
		st.sessions[chatID] = sess
	}
	return sess
}

func (st *sessionStore) get(chatID int64) (*session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[chatID]
	return sess, ok
}

// drop удаляет сессию, только если это всё ещё та же сессия
func (st *sessionStore) drop(chatID int64, sess *session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if cur, ok := st.sessions[chatID]; ok && cur == sess {
		delete(st.sessions, chatID)
	}
}

// purge удаляет сессии без активности дольше maxIdle.
// Сессии с идущим подтверждением не трогаем.
func (st *sessionStore) purge(now time.Time, maxIdle time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for chatID, sess := range st.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.touchedAt) > maxIdle && !sess.selector.Submitting()
		sess.mu.Unlock()

		if idle {
			delete(st.sessions, chatID)
			removed++
		}
	}
	return removed
}
