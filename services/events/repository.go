package events

import "github.com/piresc/guestportal/internal/pkg/tenancy"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/guestportal/services/events EventsRepo

// EventsRepo resolves the tenant whose secret signs an event
type EventsRepo interface {
	tenancy.Lookup
}
