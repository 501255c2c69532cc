package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/hotel_booking/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS stays (
	id                 UUID PRIMARY KEY,
	guest_key          TEXT NOT NULL,
	guest_name         TEXT NOT NULL,
	phone              TEXT NOT NULL DEFAULT '',
	email              TEXT NOT NULL DEFAULT '',
	address            TEXT NOT NULL DEFAULT '',
	identification     TEXT NOT NULL DEFAULT '',
	room_number        INTEGER NOT NULL,
	tier               TEXT NOT NULL,
	check_in           DATE NOT NULL,
	check_out          DATE NOT NULL,
	guest_count        INTEGER NOT NULL,
	room_cost          NUMERIC(12,2) NOT NULL,
	checked_in_at      TIMESTAMPTZ,
	invoice_id         UUID NOT NULL,
	rate               NUMERIC(12,2) NOT NULL,
	invoice_guests     INTEGER NOT NULL,
	base               NUMERIC(12,2) NOT NULL,
	add_ons            NUMERIC(12,2) NOT NULL,
	additional_charges NUMERIC(12,2) NOT NULL,
	before_discount    NUMERIC(12,2) NOT NULL,
	discount           NUMERIC(12,2) NOT NULL,
	total_amount       NUMERIC(12,2) NOT NULL,
	meal_subtotal      NUMERIC(12,2) NOT NULL,
	clamped            BOOLEAN NOT NULL DEFAULT FALSE,
	checked_out_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS stays_guest_key_idx ON stays (guest_key);
CREATE TABLE IF NOT EXISTS stay_invoice_items (
	id          UUID PRIMARY KEY,
	stay_id     UUID NOT NULL REFERENCES stays(id),
	position    INTEGER NOT NULL,
	kind        TEXT NOT NULL,
	description TEXT NOT NULL,
	amount      NUMERIC(12,2) NOT NULL
);
`

type StayArchive struct {
	db *sql.DB
}

func NewStayArchive(db *sql.DB) *StayArchive {
	return &StayArchive{db: db}
}

func (r *StayArchive) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create stay archive schema: %w", err)
	}
	return nil
}

func (r *StayArchive) Save(ctx context.Context, stay *domain.ArchivedStay) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	rec := stay.Record
	inv := stay.Invoice

	queryHeader := `
	INSERT INTO stays (id, guest_key, guest_name, phone, email, address, identification,
		room_number, tier, check_in, check_out, guest_count, room_cost, checked_in_at,
		invoice_id, rate, invoice_guests, base, add_ons, additional_charges, before_discount,
		discount, total_amount, meal_subtotal, clamped, checked_out_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	`

	_, err = tx.ExecContext(ctx, queryHeader,
		rec.StayID, rec.Key, rec.Name, rec.Contact.Phone, rec.Contact.Email, rec.Contact.Address, rec.Contact.Identification,
		int(rec.Stay.RoomNumber), string(rec.Stay.Tier), rec.Stay.CheckIn, rec.Stay.CheckOut, rec.GuestCount, rec.RoomCost, rec.CheckedInAt,
		inv.ID, inv.Rate, inv.GuestCount, inv.Base, inv.AddOns, inv.AdditionalCharges, inv.BeforeDiscount,
		inv.Discount, inv.Total, inv.MealSubtotal, inv.Clamped, stay.CheckedOutAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stay %s: %w", rec.StayID, err)
	}

	queryItem := `
	INSERT INTO stay_invoice_items (id, stay_id, position, kind, description, amount)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	stmt, err := tx.PrepareContext(ctx, queryItem)
	if err != nil {
		return fmt.Errorf("failed to prepare item statement: %w", err)
	}

	defer stmt.Close()

	for i, item := range inv.Items {
		id := item.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		_, err := stmt.ExecContext(ctx, id, rec.StayID, i, string(item.Kind), item.Description, item.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert invoice item %d of stay %s: %w", i, rec.StayID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *StayArchive) FindByGuest(ctx context.Context, guestKey string) ([]domain.ArchivedStay, error) {
	query := `
	SELECT id, guest_key, guest_name, phone, email, address, identification,
		room_number, tier, check_in, check_out, guest_count, room_cost, checked_in_at,
		invoice_id, rate, invoice_guests, base, add_ons, additional_charges, before_discount,
		discount, total_amount, meal_subtotal, clamped, checked_out_at
	FROM stays
	WHERE guest_key = $1
	ORDER BY checked_out_at DESC
	LIMIT 100
	`

	rows, err := r.db.QueryContext(ctx, query, guestKey)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	stays := []domain.ArchivedStay{}
	for rows.Next() {
		var s domain.ArchivedStay
		var roomNumber int
		var tier string
		var checkedInAt sql.NullTime

		rec := &s.Record
		inv := &s.Invoice

		if err := rows.Scan(
			&rec.StayID, &rec.Key, &rec.Name, &rec.Contact.Phone, &rec.Contact.Email, &rec.Contact.Address, &rec.Contact.Identification,
			&roomNumber, &tier, &rec.Stay.CheckIn, &rec.Stay.CheckOut, &rec.GuestCount, &rec.RoomCost, &checkedInAt,
			&inv.ID, &inv.Rate, &inv.GuestCount, &inv.Base, &inv.AddOns, &inv.AdditionalCharges, &inv.BeforeDiscount,
			&inv.Discount, &inv.Total, &inv.MealSubtotal, &inv.Clamped, &s.CheckedOutAt,
		); err != nil {
			return nil, err
		}

		rec.Stay.RoomNumber = domain.RoomNumber(roomNumber)
		rec.Stay.Tier = domain.Tier(tier)
		rec.Stay.Nights = domain.StayParams{CheckIn: rec.Stay.CheckIn, CheckOut: rec.Stay.CheckOut}.Nights()
		rec.Status = domain.StayCheckedIn
		if checkedInAt.Valid {
			rec.CheckedInAt = &checkedInAt.Time
		}

		inv.StayID = rec.StayID
		inv.GuestKey = rec.Key
		inv.RoomNumber = rec.Stay.RoomNumber
		inv.IssuedAt = s.CheckedOutAt

		stays = append(stays, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range stays {
		items, err := r.invoiceItems(ctx, stays[i].Record.StayID)
		if err != nil {
			return nil, err
		}
		stays[i].Invoice.Items = items
	}

	return stays, nil
}

func (r *StayArchive) invoiceItems(ctx context.Context, stayID uuid.UUID) ([]domain.LineItem, error) {
	query := `
	SELECT id, kind, description, amount
	FROM stay_invoice_items
	WHERE stay_id = $1
	ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, stayID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var item domain.LineItem
		var kind string
		if err := rows.Scan(&item.ID, &kind, &item.Description, &item.Amount); err != nil {
			return nil, err
		}

		item.Kind = domain.LineItemKind(kind)
		items = append(items, item)
	}

	return items, rows.Err()
}
