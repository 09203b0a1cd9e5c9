//go:build integration

package form

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/cityform/internal/db"
	"github.com/mwhite7112/cityform/internal/testutil"
)

func TestStoreSubmitter_PersistsEnquiry(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	q := db.New(sqlDB)
	svc := NewStoreSubmitter(q, nil)
	ctx := context.Background()

	enq := validEnquiry()
	enq.EventType = "Others"
	enq.OtherEvent = "Book launch"

	ack, err := svc.Submit(ctx, enq)
	require.NoError(t, err)

	stored, err := q.GetEnquiry(ctx, ack.ID)
	require.NoError(t, err)
	assert.Equal(t, enq.Name, stored.Name)
	assert.Equal(t, "Book launch", stored.OtherEvent)
	assert.WithinDuration(t, ack.ReceivedAt, stored.CreatedAt, time.Millisecond)
}

func TestListRecentEnquiries_NewestFirst(t *testing.T) {
	sqlDB := testutil.SetupDB(t)
	q := db.New(sqlDB)
	svc := NewStoreSubmitter(q, nil)
	ctx := context.Background()

	for _, city := range []string{"Pune", "Kochi", "Jaipur"} {
		enq := validEnquiry()
		enq.City = city
		_, err := svc.Submit(ctx, enq)
		require.NoError(t, err)
	}

	items, err := q.ListRecentEnquiries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Jaipur", items[0].City)
	assert.Equal(t, "Kochi", items[1].City)
}
