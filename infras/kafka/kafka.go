package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"dormy/config"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout   = 10 * time.Second
	fetchBackoff   = time.Second
	readerMaxBytes = 1 << 20
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(m.Key),
		Value: value,
	}, nil
}

// Decode unmarshals a consumed message value into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

// Handler processes one message. Returning an error is logged; the offset is
// committed either way so a poison message cannot stall the partition.
type Handler func(ctx context.Context, msg kafkaGo.Message) error

type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	// Subscribe starts consuming topic in the background. The returned dispose
	// stops the consumer and waits for the in-flight handler; it is safe to
	// call more than once.
	Subscribe(ctx context.Context, topic string, handler Handler) (dispose func())
	Close() error
}

type kafkaClientImpl struct {
	cfg    *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	var mechanism sasl.Mechanism
	if cfg.Kafka.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Balancer:               &kafkaGo.Hash{},
		Transport:              &kafkaGo.Transport{SASL: mechanism},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafkaGo.RequireOne,
		WriteTimeout:           writeTimeout,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		cfg:    cfg,
		dialer: &kafkaGo.Dialer{DualStack: true, SASLMechanism: mechanism, Timeout: writeTimeout},
		writer: writer,
	}
}

// Topic applies the configured prefix.
func Topic(cfg *config.Config, name string) string {
	return cfg.Kafka.TopicPrefix + name
}

func (k *kafkaClientImpl) Publish(ctx context.Context, topic string, messages ...Message) error {
	topic = Topic(k.cfg, topic)
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent messages")

	return nil
}

func (k *kafkaClientImpl) Subscribe(ctx context.Context, topic string, handler Handler) func() {
	topic = Topic(k.cfg, topic)

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.cfg.Kafka.Brokers,
		Topic:       topic,
		GroupID:     k.cfg.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
		MaxBytes:    readerMaxBytes,
	})

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		consume(ctx, reader, topic, handler)
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			cancel()
			<-done

			if err := reader.Close(); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("Failed to close Kafka reader")
			}

			log.Info().Str("topic", topic).Msg("Kafka subscription disposed")
		})
	}
}

type fetcher interface {
	FetchMessage(ctx context.Context) (kafkaGo.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkaGo.Message) error
}

func consume(ctx context.Context, reader fetcher, topic string, handler Handler) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to fetch message from Kafka")

			select {
			case <-ctx.Done():
				return
			case <-time.After(fetchBackoff):
			}

			continue
		}

		if err = handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", string(msg.Key)).Msg("Failed to handle message")
		}

		if err = reader.CommitMessages(context.WithoutCancel(ctx), msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit message")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
