package db

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CreateEnquiry(ctx context.Context, arg CreateEnquiryParams) (Enquiry, error)
	GetEnquiry(ctx context.Context, id uuid.UUID) (Enquiry, error)
	ListRecentEnquiries(ctx context.Context, limit int32) ([]Enquiry, error)
}

var _ Querier = (*Queries)(nil)
