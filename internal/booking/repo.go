package booking

import (
	"github.com/jmoiron/sqlx"

	"ferresur/internal/domain"
)

type Repo struct{ db *sqlx.DB }

func NewRepo(db *sqlx.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Insert(a domain.Appointment) error {
	_, err := r.db.Exec(`
		INSERT INTO appointments(id, client_name, phone, service, slot_start, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.ClientName, a.Phone, a.Service, a.SlotStart, a.Status)
	return err
}

// CountActiveAt counts non-cancelled appointments on a slot.
func (r *Repo) CountActiveAt(slotStart string) (int, error) {
	var n int
	err := r.db.Get(&n, `
		SELECT COUNT(*) FROM appointments
		WHERE slot_start = ? AND status != 'CANCELLED'
	`, slotStart)
	return n, err
}

func (r *Repo) ListLatest(limit int) ([]domain.Appointment, error) {
	var out []domain.Appointment
	err := r.db.Select(&out, `
		SELECT id, client_name, phone, service, slot_start, status,
		       COALESCE(created_at,'') AS created_at
		FROM appointments
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	return out, err
}

// Cancel marks an appointment cancelled. Returns the number of rows hit
// so callers can surface unknown ids.
func (r *Repo) Cancel(id string) (int64, error) {
	res, err := r.db.Exec(`
		UPDATE appointments SET status = 'CANCELLED'
		WHERE id = ? AND status != 'CANCELLED'
	`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
