package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// opTimeout bounds every store call; a blown deadline surfaces as
// ErrStoreTimeout rather than blocking the caller indefinitely.
const opTimeout = 5 * time.Second

const bookingColumns = `id, vehicle_id, renter_id, owner_id, pickup_date, dropoff_date,
            total_days, price_per_day, total_price, status, payment_status,
            COALESCE(transaction_id, ''), paid_at, expires_at,
            COALESCE(message, ''), COALESCE(rejection_reason, ''), created_at, updated_at`

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// StatusUpdate carries the optional fields a status transition may set
// alongside the new status. Nil fields are left untouched.
type StatusUpdate struct {
	RejectionReason *string
	PaymentStatus   *PaymentStatus
	TransactionID   *string
	PaidAt          *time.Time
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sql := `SELECT ` + bookingColumns + ` FROM ridesharex.booking WHERE id=$1;`

	booking, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, mapStoreErr(err))
	}

	return booking, nil
}

// GetActiveBookingsForVehicle returns the bookings that block new
// reservations for the vehicle, i.e. those still PENDING or CONFIRMED.
func (r *Repository) GetActiveBookingsForVehicle(ctx context.Context, vehicleID string) ([]Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sql := `SELECT ` + bookingColumns + `
            FROM ridesharex.booking
            WHERE vehicle_id=$1 AND status = ANY($2);`

	rows, err := r.pool.Query(ctx, sql, vehicleID, []string{string(StatusPending), string(StatusConfirmed)})

	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings for vehicle '%v': %w", vehicleID, mapStoreErr(err))
	}

	defer rows.Close()

	return collectBookings(rows)
}

// InsertBookingIfFree atomically checks the requested interval against the
// vehicle's active bookings and inserts the candidate when no conflict
// exists. A transaction-scoped advisory lock on the vehicle id serializes
// concurrent requests for the same vehicle, so the check and the insert are
// linearizable; a plain read-then-write sequence is not safe here.
func (r *Repository) InsertBookingIfFree(ctx context.Context, booking Booking) (Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to begin transaction: %w", mapStoreErr(err))
	}

	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, booking.VehicleID)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to lock vehicle '%v': %w", booking.VehicleID, mapStoreErr(err))
	}

	// A stale PENDING hold the sweeper has not reached yet must not block
	// the requested dates, so expire the vehicle's overdue holds under the
	// same lock before scanning for conflicts.
	_, err = tx.Exec(ctx, `
            UPDATE ridesharex.booking
            SET status=$1, updated_at=now()
            WHERE vehicle_id=$2 AND status=$3 AND expires_at < now();
        `, StatusExpired, booking.VehicleID, StatusPending)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to expire stale holds for vehicle '%v': %w", booking.VehicleID, mapStoreErr(err))
	}

	rows, err := tx.Query(ctx, `
            SELECT pickup_date, dropoff_date
            FROM ridesharex.booking
            WHERE vehicle_id=$1 AND status = ANY($2);
        `, booking.VehicleID, []string{string(StatusPending), string(StatusConfirmed)})

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch active bookings for vehicle '%v': %w", booking.VehicleID, mapStoreErr(err))
	}

	for rows.Next() {
		var pickup, dropoff time.Time

		if err := rows.Scan(&pickup, &dropoff); err != nil {
			rows.Close()
			return Booking{}, fmt.Errorf("error scanning booking row: %w", err)
		}

		if Overlaps(booking.PickupDate, booking.DropoffDate, pickup, dropoff) {
			rows.Close()
			return Booking{}, ErrConflict
		}
	}

	if err := rows.Err(); err != nil {
		return Booking{}, fmt.Errorf("error iterating bookings rows: %w", mapStoreErr(err))
	}

	rows.Close()

	err = tx.QueryRow(ctx, `
            INSERT INTO ridesharex.booking(
            id, vehicle_id, renter_id, owner_id, pickup_date, dropoff_date,
            total_days, price_per_day, total_price, status, payment_status,
            expires_at, message)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
            RETURNING created_at, updated_at;
        `,
		booking.ID,
		booking.VehicleID,
		booking.RenterID,
		booking.OwnerID,
		booking.PickupDate,
		booking.DropoffDate,
		booking.TotalDays,
		booking.PricePerDay,
		booking.TotalPrice,
		StatusPending,
		PaymentPending,
		booking.ExpiresAt,
		booking.Message,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", mapStoreErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return Booking{}, fmt.Errorf("failed to commit booking insert: %w", mapStoreErr(err))
	}

	booking.Status = StatusPending
	booking.PaymentStatus = PaymentPending

	return booking, nil
}

// CompareAndSetStatus applies a status transition only when the booking still
// carries the expected status. A concurrent writer winning the race leaves
// the row with a different status and the caller gets ErrStaleState.
func (r *Repository) CompareAndSetStatus(ctx context.Context, id string, expected, next Status, update StatusUpdate) (Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sql := `
            UPDATE ridesharex.booking
            SET
                status=$1,
                rejection_reason=COALESCE($2, rejection_reason),
                payment_status=COALESCE($3, payment_status),
                transaction_id=COALESCE($4, transaction_id),
                paid_at=COALESCE($5, paid_at),
                updated_at=now()
            WHERE id=$6 AND status=$7
            RETURNING ` + bookingColumns + `;`

	booking, err := scanBooking(r.pool.QueryRow(ctx, sql,
		next,
		update.RejectionReason,
		update.PaymentStatus,
		update.TransactionID,
		update.PaidAt,
		id,
		expected,
	))

	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a lost race from a missing row.
		var exists bool
		checkErr := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ridesharex.booking WHERE id=$1);`, id).Scan(&exists)

		if checkErr != nil {
			return Booking{}, fmt.Errorf("failed to check booking '%v': %w", id, mapStoreErr(checkErr))
		}

		if !exists {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, ErrStaleState
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to update booking '%v' status: %w", id, mapStoreErr(err))
	}

	return booking, nil
}

// ExpireStale bulk-transitions every PENDING booking past its expiry to
// EXPIRED and reports how many rows changed. Safe to run repeatedly.
func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sql := `
            UPDATE ridesharex.booking
            SET status=$1, updated_at=now()
            WHERE status=$2 AND expires_at < $3;
        `

	tag, err := r.pool.Exec(ctx, sql, StatusExpired, StatusPending, now)

	if err != nil {
		return 0, fmt.Errorf("failed to expire stale bookings: %w", mapStoreErr(err))
	}

	return tag.RowsAffected(), nil
}

// GetBookingsForRenter lists the renter's bookings, newest first, hiding
// EXPIRED ones the way the renter-facing views do.
func (r *Repository) GetBookingsForRenter(ctx context.Context, renterID string) ([]Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sql := `SELECT ` + bookingColumns + `
            FROM ridesharex.booking
            WHERE renter_id=$1 AND status != $2
            ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, sql, renterID, StatusExpired)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for renter '%v': %w", renterID, mapStoreErr(err))
	}

	defer rows.Close()

	return collectBookings(rows)
}

// GetRequestsForOwner lists the booking requests against the owner's
// vehicles, newest first, hiding EXPIRED ones.
func (r *Repository) GetRequestsForOwner(ctx context.Context, ownerID string) ([]Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	sql := `SELECT ` + bookingColumns + `
            FROM ridesharex.booking
            WHERE owner_id=$1 AND status != $2
            ORDER BY created_at DESC;`

	rows, err := r.pool.Query(ctx, sql, ownerID, StatusExpired)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests for owner '%v': %w", ownerID, mapStoreErr(err))
	}

	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", mapStoreErr(err))
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking

	err := row.Scan(
		&booking.ID,
		&booking.VehicleID,
		&booking.RenterID,
		&booking.OwnerID,
		&booking.PickupDate,
		&booking.DropoffDate,
		&booking.TotalDays,
		&booking.PricePerDay,
		&booking.TotalPrice,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.TransactionID,
		&booking.PaidAt,
		&booking.ExpiresAt,
		&booking.Message,
		&booking.RejectionReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	return booking, err
}

// mapStoreErr folds driver-level failures into the engine's error taxonomy:
// deadline and network timeouts become ErrStoreTimeout, serialization and
// deadlock losses become ErrStaleState so callers can retry.
func mapStoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %v", ErrStoreTimeout, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%w: %v", ErrStaleState, err)
	}

	return err
}
