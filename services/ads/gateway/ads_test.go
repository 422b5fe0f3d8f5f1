package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	logmocks "github.com/piresc/guestportal/internal/pkg/eventlog/mocks"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestAppendEvent(t *testing.T) {
	payload := models.JSONMap{"slot": "banner", "creative_id": int64(7), "campaign_id": int64(2)}

	tests := []struct {
		name    string
		sinkErr error
	}{
		{name: "appended", sinkErr: nil},
		{name: "sink failure is swallowed", sinkErr: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Arrange
			sink := logmocks.NewMockSink(ctrl)
			sink.EXPECT().Append(gomock.Any(), int64(1), int64(2), models.EventImpression, payload).Return(tt.sinkErr)
			gw := NewAdsGW(sink)

			// Act & Assert
			assert.NotPanics(t, func() {
				gw.AppendEvent(context.Background(), 1, 2, models.EventImpression, payload)
			})
		})
	}
}
