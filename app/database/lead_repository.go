package database

import (
	"fmt"
)

// SQLLeadRepository is the SQLite-backed LeadRepository.
type SQLLeadRepository struct {
	db *DB
}

var _ LeadRepository = (*SQLLeadRepository)(nil)

func NewSQLLeadRepository(db *DB) *SQLLeadRepository {
	return &SQLLeadRepository{db: db}
}

func (r *SQLLeadRepository) CreateContact(contact Contact) (*Contact, error) {
	result, err := r.db.Exec(`
		INSERT INTO contacts (name, email, company, message, source)
		VALUES (?, ?, ?, ?, ?)
	`, contact.Name, contact.Email, contact.Company, contact.Message, contact.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get contact id: %w", err)
	}

	row := r.db.QueryRow(`
		SELECT id, name, email, company, message, source, created_at
		FROM contacts WHERE id = ?
	`, id)

	var saved Contact
	err = row.Scan(&saved.ID, &saved.Name, &saved.Email, &saved.Company,
		&saved.Message, &saved.Source, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back contact: %w", err)
	}

	return &saved, nil
}

func (r *SQLLeadRepository) ListContacts() ([]Contact, error) {
	rows, err := r.db.Query(`
		SELECT id, name, email, company, message, source, created_at
		FROM contacts ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Message,
			&c.Source, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}

	return contacts, nil
}

func (r *SQLLeadRepository) CreateBooking(booking Booking) (*Booking, error) {
	if booking.Status == "" {
		booking.Status = "pending"
	}

	result, err := r.db.Exec(`
		INSERT INTO bookings (contact_id, service, date, status, notes)
		VALUES (?, ?, ?, ?, ?)
	`, booking.ContactID, booking.Service, booking.Date, booking.Status, booking.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get booking id: %w", err)
	}

	row := r.db.QueryRow(`
		SELECT id, contact_id, service, date, status, notes, created_at
		FROM bookings WHERE id = ?
	`, id)

	var saved Booking
	err = row.Scan(&saved.ID, &saved.ContactID, &saved.Service, &saved.Date,
		&saved.Status, &saved.Notes, &saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back booking: %w", err)
	}

	return &saved, nil
}

func (r *SQLLeadRepository) ListBookings() ([]Booking, error) {
	rows, err := r.db.Query(`
		SELECT id, contact_id, service, date, status, notes, created_at
		FROM bookings ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		err := rows.Scan(&b.ID, &b.ContactID, &b.Service, &b.Date, &b.Status,
			&b.Notes, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}
