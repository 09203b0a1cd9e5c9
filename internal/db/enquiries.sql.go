package db

import (
	"context"

	"github.com/google/uuid"
)

const createEnquiry = `-- name: CreateEnquiry :one
INSERT INTO enquiries (name, email, mobile, city, event_type, other_event, message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, email, mobile, city, event_type, other_event, message, created_at
`

type CreateEnquiryParams struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	City       string `json:"city"`
	EventType  string `json:"event_type"`
	OtherEvent string `json:"other_event"`
	Message    string `json:"message"`
}

func (q *Queries) CreateEnquiry(ctx context.Context, arg CreateEnquiryParams) (Enquiry, error) {
	row := q.db.QueryRowContext(ctx, createEnquiry,
		arg.Name,
		arg.Email,
		arg.Mobile,
		arg.City,
		arg.EventType,
		arg.OtherEvent,
		arg.Message,
	)
	var i Enquiry
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Mobile,
		&i.City,
		&i.EventType,
		&i.OtherEvent,
		&i.Message,
		&i.CreatedAt,
	)
	return i, err
}

const getEnquiry = `-- name: GetEnquiry :one
SELECT id, name, email, mobile, city, event_type, other_event, message, created_at
FROM enquiries
WHERE id = $1
`

func (q *Queries) GetEnquiry(ctx context.Context, id uuid.UUID) (Enquiry, error) {
	row := q.db.QueryRowContext(ctx, getEnquiry, id)
	var i Enquiry
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Mobile,
		&i.City,
		&i.EventType,
		&i.OtherEvent,
		&i.Message,
		&i.CreatedAt,
	)
	return i, err
}

const listRecentEnquiries = `-- name: ListRecentEnquiries :many
SELECT id, name, email, mobile, city, event_type, other_event, message, created_at
FROM enquiries
ORDER BY created_at DESC
LIMIT $1
`

func (q *Queries) ListRecentEnquiries(ctx context.Context, limit int32) ([]Enquiry, error) {
	rows, err := q.db.QueryContext(ctx, listRecentEnquiries, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Enquiry
	for rows.Next() {
		var i Enquiry
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.Mobile,
			&i.City,
			&i.EventType,
			&i.OtherEvent,
			&i.Message,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
