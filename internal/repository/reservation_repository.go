package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/reservation_bot/internal/model"
	"github.com/Freeeeeet/reservation_bot/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	*base.Repository
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{Repository: base.NewRepository(pool)}
}

// Create сохраняет подтверждённую бронь.
// Повторное сохранение той же удалённой брони обновляет запись.
func (r *ReservationRepository) Create(ctx context.Context, res *model.LocalReservation) error {
	query := `
		INSERT INTO reservations (user_id, remote_id, party_size, table_name, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, remote_id) DO UPDATE
		SET party_size = EXCLUDED.party_size,
		    table_name = EXCLUDED.table_name,
		    starts_at  = EXCLUDED.starts_at,
		    ends_at    = EXCLUDED.ends_at,
		    status     = EXCLUDED.status
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		res.UserID,
		res.RemoteID,
		res.PartySize,
		res.TableName,
		res.StartsAt,
		res.EndsAt,
		res.Status,
	).Scan(&res.ID, &res.CreatedAt)

	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	return nil
}

// UpdateStatus меняет статус брони пользователя по удалённому ID
func (r *ReservationRepository) UpdateStatus(ctx context.Context, userID, remoteID int64, status model.ReservationStatus) error {
	query := `
		UPDATE reservations
		SET status = $1
		WHERE user_id = $2 AND remote_id = $3
	`

	// Бронь могла быть создана не через бота - тогда обновлять нечего
	if err := r.Exec(ctx, query, status, userID, remoteID); err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	return nil
}

// DueForReminder брони, которые начинаются в [from, to) и ещё без напоминания
func (r *ReservationRepository) DueForReminder(ctx context.Context, from, to time.Time) ([]*model.LocalReservation, error) {
	query := `
		SELECT r.id, r.user_id, r.remote_id, r.party_size, r.table_name, r.starts_at, r.ends_at,
		       r.status, r.reminded_at, r.created_at,
		       u.telegram_id, u.first_name
		FROM reservations r
		JOIN users u ON u.id = r.user_id
		WHERE r.status = 'Confirmed'
		  AND r.reminded_at IS NULL
		  AND r.starts_at >= $1
		  AND r.starts_at < $2
		ORDER BY r.starts_at
	`

	rows, err := r.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get reservations due for reminder: %w", err)
	}

	return base.CollectRows(rows, scanDueReservation)
}

func scanDueReservation(row pgx.Row) (*model.LocalReservation, error) {
	res := &model.LocalReservation{User: &model.User{}}
	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.RemoteID,
		&res.PartySize,
		&res.TableName,
		&res.StartsAt,
		&res.EndsAt,
		&res.Status,
		&res.RemindedAt,
		&res.CreatedAt,
		&res.User.TelegramID,
		&res.User.FirstName,
	)
	if err != nil {
		return nil, err
	}
	res.User.ID = res.UserID
	return res, nil
}

// MarkReminded отмечает, что напоминание отправлено
func (r *ReservationRepository) MarkReminded(ctx context.Context, id int64, at time.Time) error {
	if err := r.ExecOne(ctx, `UPDATE reservations SET reminded_at = $1 WHERE id = $2`, at, id); err != nil {
		return fmt.Errorf("mark reservation %d reminded: %w", id, err)
	}
	return nil
}
