package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/Freeeeeet/reservation_bot/internal/selector"
	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"

	// BookingWindowDays на сколько дней вперёд можно бронировать
	BookingWindowDays = 7
)

// ReservationAPI внешний сервис бронирований
type ReservationAPI interface {
	Availability(ctx context.Context, token, date string, tableID int) ([]model.TimeSlot, error)
	CreateReservation(ctx context.Context, token string, req model.CreateReservationRequest) (*model.Reservation, error)
	History(ctx context.Context, token string) (*model.ReservationHistory, error)
	CancelReservation(ctx context.Context, token string, id int64) (*model.Reservation, error)
}

// ReservationStore локальное хранилище подтверждённых броней
type ReservationStore interface {
	Create(ctx context.Context, res *model.LocalReservation) error
	UpdateStatus(ctx context.Context, userID, remoteID int64, status model.ReservationStatus) error
	DueForReminder(ctx context.Context, from, to time.Time) ([]*model.LocalReservation, error)
	MarkReminded(ctx context.Context, id int64, at time.Time) error
}

// Confirmation результат успешного подтверждения
type Confirmation struct {
	Reservation *model.Reservation
	Date        string
	Start       selector.TimeOfDay
	End         selector.TimeOfDay
}

type BookingService struct {
	api          ReservationAPI
	reservations ReservationStore
	sessions     *sessionStore
	location     *time.Location
	now          func() time.Time
	logger       *zap.Logger
}

func NewBookingService(
	api ReservationAPI,
	reservations ReservationStore,
	location *time.Location,
	logger *zap.Logger,
) *BookingService {
	if location == nil {
		location = time.UTC
	}
	return &BookingService{
		api:          api,
		reservations: reservations,
		sessions:     newSessionStore(),
		location:     location,
		now:          time.Now,
		logger:       logger,
	}
}

// BookingDates даты, доступные для брони: сегодня и ещё BookingWindowDays дней
func (s *BookingService) BookingDates() []time.Time {
	today := s.today()
	dates := make([]time.Time, 0, BookingWindowDays+1)
	for i := 0; i <= BookingWindowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}

func (s *BookingService) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

// ValidateDate проверяет, что дата попадает в окно бронирования
func (s *BookingService) ValidateDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	today := s.today()
	if day.Before(today) || day.After(today.AddDate(0, 0, BookingWindowDays)) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return day, nil
}

// Session возвращает состояние текущей попытки брони
func (s *BookingService) Session(chatID int64) (Snapshot, bool) {
	sess, ok := s.sessions.get(chatID)
	if !ok {
		return Snapshot{}, false
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.snapshot(), true
}

// SetPartySize запоминает размер компании. Выбор слотов сбрасывается,
// а запрос в полёте станет устаревшим.
func (s *BookingService) SetPartySize(chatID int64, partySize int) (Snapshot, error) {
	sess := s.sessions.getOrCreate(chatID, s.now())

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.selector.Submitting() {
		return sess.snapshot(), selector.ErrSubmissionInProgress
	}

	sess.touchedAt = s.now()
	sess.generation++
	sess.loading = false
	sess.selector.Load(nil)

	if err := selector.ValidatePartySize(partySize); err != nil {
		sess.partySize = 0
		sess.tableID = 0
		return sess.snapshot(), err
	}

	sess.partySize = partySize
	sess.tableID, _ = selector.TableForPartySize(partySize)
	return sess.snapshot(), nil
}

// LoadSlots загружает слоты для даты и размера компании.
// Любая перезагрузка сбрасывает выбор; ответ, пришедший после более новой
// перезагрузки, отбрасывается с ErrStaleResponse.
func (s *BookingService) LoadSlots(ctx context.Context, chatID int64, user *model.User, date string, partySize int) (Snapshot, error) {
	if !user.HasToken() {
		return Snapshot{}, ErrTokenRequired
	}

	snap, err := s.SetPartySize(chatID, partySize)
	if err != nil {
		return snap, err
	}

	sess := s.sessions.getOrCreate(chatID, s.now())

	sess.mu.Lock()
	if _, err := s.ValidateDate(date); err != nil {
		sess.date = ""
		snap := sess.snapshot()
		sess.mu.Unlock()
		return snap, err
	}
	sess.date = date
	sess.generation++
	sess.loading = true
	gen := sess.generation
	tableID := sess.tableID
	sess.mu.Unlock()

	raw, fetchErr := s.api.Availability(ctx, user.APIToken, date, tableID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.generation != gen {
		s.logger.Debug("Discarding stale availability",
			zap.Int64("chat_id", chatID),
			zap.String("date", date),
			zap.Int("table_id", tableID))
		return sess.snapshot(), ErrStaleResponse
	}

	sess.loading = false
	sess.touchedAt = s.now()

	if fetchErr != nil {
		s.logger.Warn("Failed to load availability",
			zap.Int64("chat_id", chatID),
			zap.String("date", date),
			zap.Int("table_id", tableID),
			zap.Error(fetchErr))
		return sess.snapshot(), fmt.Errorf("%w: %w", ErrFetchFailure, fetchErr)
	}

	list, err := selector.NewSlotList(raw)
	if err != nil {
		s.logger.Error("Reservation service returned malformed slots",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return sess.snapshot(), fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	sess.selector.Load(list)
	s.logger.Info("Slots loaded",
		zap.Int64("chat_id", chatID),
		zap.String("date", date),
		zap.Int("table_id", tableID),
		zap.Int("slots", len(list)))

	return sess.snapshot(), nil
}

// SelectSlot обрабатывает клик по слоту
func (s *BookingService) SelectSlot(chatID int64, t selector.TimeOfDay) (Snapshot, error) {
	sess, ok := s.sessions.get(chatID)
	if !ok {
		return Snapshot{}, ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.loading {
		return sess.snapshot(), ErrLoading
	}

	sess.touchedAt = s.now()
	err := sess.selector.SelectEndpoint(t)
	return sess.snapshot(), err
}

// ResetSelection снимает выбор слотов
func (s *BookingService) ResetSelection(chatID int64) (Snapshot, error) {
	sess, ok := s.sessions.get(chatID)
	if !ok {
		return Snapshot{}, ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.selector.Submitting() {
		return sess.snapshot(), selector.ErrSubmissionInProgress
	}
	sess.touchedAt = s.now()
	sess.selector.Reset()
	return sess.snapshot(), nil
}

// SetMessageID запоминает сообщение, в котором нарисована сетка слотов
func (s *BookingService) SetMessageID(chatID int64, messageID int) {
	sess := s.sessions.getOrCreate(chatID, s.now())

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.messageID = messageID
}

// BeginConfirm блокирует подтверждение; возвращает снимок с меткой "Processing..."
func (s *BookingService) BeginConfirm(chatID int64) (Snapshot, error) {
	sess, ok := s.sessions.get(chatID)
	if !ok {
		return Snapshot{}, ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.selector.BeginSubmit(); err != nil {
		return sess.snapshot(), err
	}
	sess.touchedAt = s.now()
	return sess.snapshot(), nil
}

// Confirm отправляет выбранный интервал в сервис бронирований.
// Перед вызовом должен быть успешный BeginConfirm.
// При успехе сессия завершается; при ошибке интервал остаётся выбранным.
func (s *BookingService) Confirm(ctx context.Context, chatID int64, user *model.User) (*Confirmation, Snapshot, error) {
	sess, ok := s.sessions.get(chatID)
	if !ok {
		return nil, Snapshot{}, ErrNoSession
	}

	sess.mu.Lock()
	if !sess.selector.Submitting() {
		snap := sess.snapshot()
		sess.mu.Unlock()
		return nil, snap, selector.ErrNoRange
	}
	start, end, _ := sess.selector.Range()
	req := model.CreateReservationRequest{
		PartySize: sess.partySize,
		Date:      sess.date,
		StartTime: start.String(),
		EndTime:   end.String(),
	}
	sess.mu.Unlock()

	res, err := s.api.CreateReservation(ctx, user.APIToken, req)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.touchedAt = s.now()

	if err != nil {
		sess.selector.FailSubmit(FailureMessage(err, "Failed to create reservation."))
		s.logger.Warn("Reservation rejected",
			zap.Int64("chat_id", chatID),
			zap.String("date", req.Date),
			zap.String("start", req.StartTime),
			zap.String("end", req.EndTime),
			zap.Error(err))
		return nil, sess.snapshot(), fmt.Errorf("%w: %w", ErrSubmissionFailure, err)
	}

	sess.selector.CompleteSubmit()
	s.sessions.drop(chatID, sess)

	s.logger.Info("Reservation created",
		zap.Int64("chat_id", chatID),
		zap.Int64("remote_id", res.ID),
		zap.String("date", req.Date),
		zap.String("start", req.StartTime),
		zap.String("end", req.EndTime))

	s.storeLocal(ctx, user, res, req, start, end)

	return &Confirmation{Reservation: res, Date: req.Date, Start: start, End: end}, sess.snapshot(), nil
}

func (s *BookingService) storeLocal(ctx context.Context, user *model.User, res *model.Reservation, req model.CreateReservationRequest, start, end selector.TimeOfDay) {
	day, err := time.ParseInLocation(dateLayout, req.Date, s.location)
	if err != nil {
		return
	}

	local := &model.LocalReservation{
		UserID:    user.ID,
		RemoteID:  res.ID,
		PartySize: res.PartySize,
		TableName: res.Table.Name,
		StartsAt:  day.Add(time.Duration(start.Minutes()) * time.Minute),
		EndsAt:    day.Add(time.Duration(end.Minutes()) * time.Minute),
		Status:    model.ReservationStatusConfirmed,
	}
	if local.PartySize == 0 {
		local.PartySize = req.PartySize
	}

	if err := s.reservations.Create(ctx, local); err != nil {
		// бронь уже создана в сервисе, локальная запись нужна только для напоминаний
		s.logger.Error("Failed to store reservation locally",
			zap.Int64("remote_id", res.ID),
			zap.Error(err))
	}
}

// Restart начинает попытку брони заново: размер компании, дата и выбор
// сбрасываются, загрузка в полёте становится устаревшей.
func (s *BookingService) Restart(chatID int64) error {
	sess := s.sessions.getOrCreate(chatID, s.now())

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.selector.Submitting() {
		return selector.ErrSubmissionInProgress
	}

	sess.generation++
	sess.loading = false
	sess.partySize = 0
	sess.tableID = 0
	sess.date = ""
	sess.touchedAt = s.now()
	sess.selector.Load(nil)
	return nil
}

// Abort завершает попытку брони
func (s *BookingService) Abort(chatID int64) {
	if sess, ok := s.sessions.get(chatID); ok {
		s.sessions.drop(chatID, sess)
	}
}

// PurgeIdle удаляет заброшенные попытки брони
func (s *BookingService) PurgeIdle(maxIdle time.Duration) int {
	return s.sessions.purge(s.now(), maxIdle)
}

// History брони пользователя из сервиса
func (s *BookingService) History(ctx context.Context, user *model.User) (*model.ReservationHistory, error) {
	if !user.HasToken() {
		return nil, ErrTokenRequired
	}
	history, err := s.api.History(ctx, user.APIToken)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}

// Cancel отменяет бронь в сервисе и локально
func (s *BookingService) Cancel(ctx context.Context, user *model.User, remoteID int64) (*model.Reservation, error) {
	if !user.HasToken() {
		return nil, ErrTokenRequired
	}

	res, err := s.api.CancelReservation(ctx, user.APIToken, remoteID)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	if err := s.reservations.UpdateStatus(ctx, user.ID, remoteID, model.ReservationStatusCancelled); err != nil {
		s.logger.Error("Failed to update local reservation status",
			zap.Int64("remote_id", remoteID),
			zap.Error(err))
	}

	s.logger.Info("Reservation cancelled",
		zap.Int64("user_id", user.ID),
		zap.Int64("remote_id", remoteID))

	return res, nil
}

// IsSelectionError ошибки выбора, которые показываются рядом с сеткой
func IsSelectionError(err error) bool {
	return errors.Is(err, selector.ErrUnavailableInRange) ||
		errors.Is(err, selector.ErrSlotNotSelectable)
}
