package events

import "context"

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/guestportal/services/events EventsUC

// EventsUC ingests analytics events posted by portal pages
type EventsUC interface {
	// Ingest validates the raw JSON body against signature and appends it.
	// signature is the X-Portal-Signature header value, possibly empty.
	Ingest(ctx context.Context, body []byte, signature string) error
}
