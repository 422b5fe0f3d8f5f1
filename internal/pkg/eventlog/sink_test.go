package eventlog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	msgs []published
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, subject string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, published{subject: subject, data: data})
	return nil
}

func (f *fakePublisher) Ping(context.Context) error { return nil }

func (f *fakePublisher) Close() {}

func TestNewEvent(t *testing.T) {
	e := NewEvent(1, 0, models.EventClick, nil)

	assert.NotEmpty(t, e.ID)
	assert.Nil(t, e.SiteID)
	assert.NotNil(t, e.Payload)
	assert.False(t, e.TS.IsZero())

	e = NewEvent(1, 7, models.EventImpression, models.JSONMap{"slot": "top"})
	require.NotNil(t, e.SiteID)
	assert.Equal(t, int64(7), *e.SiteID)
}

func TestPostgresSink_Append(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	sink := NewPostgresSink(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectExec("INSERT INTO events").
		WithArgs(sqlmock.AnyArg(), int64(1), sqlmock.AnyArg(), models.EventSplashView, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = sink.Append(context.Background(), 1, 2, models.EventSplashView, models.JSONMap{})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSink_AppendError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	sink := NewPostgresSink(sqlx.NewDb(mockDB, "sqlmock"))

	mock.ExpectExec("INSERT INTO events").WillReturnError(errors.New("disk full"))

	err = sink.Append(context.Background(), 1, 2, models.EventClick, nil)

	assert.ErrorContains(t, err, "failed to insert event")
}

func TestBusSink_Append(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewBusSink(pub)

	err := sink.Append(context.Background(), 3, 4, models.EventImpression, models.JSONMap{"slot": "top"})

	require.NoError(t, err)
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, "events.impression", pub.msgs[0].subject)

	var e models.Event
	require.NoError(t, json.Unmarshal(pub.msgs[0].data, &e))
	assert.Equal(t, int64(3), e.TenantID)
	assert.Equal(t, models.EventImpression, e.Type)
	assert.Equal(t, "top", e.Payload["slot"])
}

func TestMultiSink_TriesEverySink(t *testing.T) {
	failing := &fakePublisher{err: errors.New("broker down")}
	working := &fakePublisher{}
	sink := NewMultiSink(nil, NewBusSink(failing), NewBusSink(working))

	err := sink.Append(context.Background(), 1, 1, models.EventClick, nil)

	assert.ErrorContains(t, err, "broker down")
	assert.Len(t, working.msgs, 1)
}
