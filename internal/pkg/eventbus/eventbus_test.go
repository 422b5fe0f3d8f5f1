package eventbus

import (
	"context"
	"os"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/guestportal/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	server := natsserver.RunServer(&opts)
	code := m.Run()
	server.Shutdown()
	os.Exit(code)
}

func TestNew_Noop(t *testing.T) {
	for _, driver := range []string{"", "none", "NONE"} {
		pub, err := New(models.EventBusConfig{Driver: driver})
		require.NoError(t, err)
		assert.IsType(t, Noop{}, pub)
		assert.NoError(t, pub.Publish(context.Background(), "events", []byte("{}")))
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(models.EventBusConfig{Driver: "kafka"})

	assert.ErrorContains(t, err, `unknown event bus driver "kafka"`)
}

func TestNew_NSQUnreachable(t *testing.T) {
	_, err := New(models.EventBusConfig{Driver: "nsq", NSQAddr: "127.0.0.1:1"})

	assert.Error(t, err)
}

func TestNATSPublisher_PrefixesSubject(t *testing.T) {
	pub, err := New(models.EventBusConfig{Driver: "nats", NATSURL: testNatsURL, SubjectPrefix: "portal"})
	require.NoError(t, err)
	defer pub.Close()

	conn, err := nats.Connect(testNatsURL)
	require.NoError(t, err)
	defer conn.Close()

	msgCh := make(chan *nats.Msg, 1)
	sub, err := conn.ChanSubscribe("portal.otp.issued", msgCh)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, conn.Flush())

	require.NoError(t, pub.Publish(context.Background(), "otp.issued", []byte(`{"otp_id":"1"}`)))

	select {
	case msg := <-msgCh:
		assert.JSONEq(t, `{"otp_id":"1"}`, string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("did not receive published message")
	}
}
