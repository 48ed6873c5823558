package service

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/model"
)

type fakeAPI struct {
	mu sync.Mutex

	slots      []model.TimeSlot
	slotsErr   error
	onFetch    func()
	created    *model.Reservation
	createErr  error
	history    *model.ReservationHistory
	cancelErr  error
	fetchCalls int
	lastToken  string
	lastTable  int
	lastCreate model.CreateReservationRequest
	cancelled  []int64
}

func (f *fakeAPI) Availability(_ context.Context, token, _ string, tableID int) ([]model.TimeSlot, error) {
	f.mu.Lock()
	f.fetchCalls++
	f.lastToken = token
	f.lastTable = tableID
	hook := f.onFetch
	f.onFetch = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return f.slots, f.slotsErr
}

func (f *fakeAPI) CreateReservation(_ context.Context, _ string, req model.CreateReservationRequest) (*model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastCreate = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeAPI) History(context.Context, string) (*model.ReservationHistory, error) {
	return f.history, nil
}

func (f *fakeAPI) CancelReservation(_ context.Context, _ string, id int64) (*model.Reservation, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return &model.Reservation{ID: id, Status: model.ReservationStatusCancelled}, nil
}

type statusChange struct {
	userID   int64
	remoteID int64
	status   model.ReservationStatus
}

type fakeReservationStore struct {
	created  []*model.LocalReservation
	statuses []statusChange
	due      []*model.LocalReservation
	reminded []int64
}

func (f *fakeReservationStore) Create(_ context.Context, res *model.LocalReservation) error {
	res.ID = int64(len(f.created) + 1)
	f.created = append(f.created, res)
	return nil
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, userID, remoteID int64, status model.ReservationStatus) error {
	f.statuses = append(f.statuses, statusChange{userID, remoteID, status})
	return nil
}

func (f *fakeReservationStore) DueForReminder(_ context.Context, from, to time.Time) ([]*model.LocalReservation, error) {
	var result []*model.LocalReservation
	for _, res := range f.due {
		if !res.StartsAt.Before(from) && res.StartsAt.Before(to) && res.RemindedAt == nil {
			result = append(result, res)
		}
	}
	return result, nil
}

func (f *fakeReservationStore) MarkReminded(_ context.Context, id int64, at time.Time) error {
	f.reminded = append(f.reminded, id)
	for _, res := range f.due {
		if res.ID == id {
			res.RemindedAt = &at
		}
	}
	return nil
}

type fakeUserStore struct {
	byTelegram map[int64]*model.User
	nextID     int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byTelegram: make(map[int64]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	f.byTelegram[user.TelegramID] = user
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, user *model.User) error {
	f.byTelegram[user.TelegramID] = user
	return nil
}

func (f *fakeUserStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	return f.byTelegram[telegramID], nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range f.byTelegram {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) SetAPIToken(_ context.Context, userID int64, token string) error {
	for _, u := range f.byTelegram {
		if u.ID == userID {
			u.APIToken = token
		}
	}
	return nil
}

type recordingNotifier struct {
	sent []int64
	fail map[int64]bool
}

func (n *recordingNotifier) NotifyReservation(_ context.Context, res *model.LocalReservation) error {
	if n.fail[res.ID] {
		return context.DeadlineExceeded
	}
	n.sent = append(n.sent, res.ID)
	return nil
}
