package db

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enquiryColumns = []string{"id", "name", "email", "mobile", "city", "event_type", "other_event", "message", "created_at"}

func TestCreateEnquiry(t *testing.T) {
	t.Parallel()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	id := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO enquiries")).
		WithArgs("Asha", "asha@example.com", "9876543210", "Pune", "Others", "Book launch", "").
		WillReturnRows(sqlmock.NewRows(enquiryColumns).
			AddRow(id.String(), "Asha", "asha@example.com", "9876543210", "Pune", "Others", "Book launch", "", now))

	got, err := New(sqlDB).CreateEnquiry(context.Background(), CreateEnquiryParams{
		Name:       "Asha",
		Email:      "asha@example.com",
		Mobile:     "9876543210",
		City:       "Pune",
		EventType:  "Others",
		OtherEvent: "Book launch",
	})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Book launch", got.OtherEvent)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEnquiry_NotFound(t *testing.T) {
	t.Parallel()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM enquiries")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err = New(sqlDB).GetEnquiry(context.Background(), id)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecentEnquiries(t *testing.T) {
	t.Parallel()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(int32(2)).
		WillReturnRows(sqlmock.NewRows(enquiryColumns).
			AddRow(uuid.NewString(), "Ravi", "ravi@example.com", "9123456789", "Chennai", "Wedding", "", "", now).
			AddRow(uuid.NewString(), "Meera", "meera@example.com", "9988776655", "Kochi", "Corporate", "", "Hi", now.Add(-time.Minute)))

	items, err := New(sqlDB).ListRecentEnquiries(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ravi", items[0].Name)
	assert.Equal(t, "Hi", items[1].Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}
