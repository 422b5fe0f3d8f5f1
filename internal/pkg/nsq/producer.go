package nsq

import (
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/guestportal/internal/pkg/logger"
)

// Producer publishes portal events to an nsqd instance
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to nsqd at address and pings it
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends body to topic
func (p *Producer) Publish(topic string, body []byte) error {
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// Ping checks that nsqd is reachable
func (p *Producer) Ping() error {
	return p.producer.Ping()
}
