package reportsink

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Timothyfranx/ultimatebosu/internal/config"
)

// RabbitMQ publishes report rows and template requests to the
// spreadsheet feed. A downstream consumer owns the actual sheet; the
// bot only emits the facts and keeps the returned ref.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	entropy    *ulid.MonotonicEntropy
	logger     *slog.Logger
}

func NewRabbitMQ(cfg config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		entropy:    ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		logger:     logger,
	}, nil
}

// RowMessage appends one accepted submission to the period's sheet.
type RowMessage struct {
	Kind      string    `json:"kind"`
	PeriodID  int64     `json:"period_id"`
	Day       string    `json:"day"`
	Ordinal   int       `json:"ordinal"`
	Link      string    `json:"link"`
	Timestamp time.Time `json:"timestamp"`
}

// TemplateMessage asks the consumer to create an empty period sheet
// under the given ref.
type TemplateMessage struct {
	Kind         string    `json:"kind"`
	Ref          string    `json:"ref"`
	PeriodID     int64     `json:"period_id"`
	TargetPerDay int       `json:"target_per_day"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Timestamp    time.Time `json:"timestamp"`
}

func (r *RabbitMQ) WriteRow(ctx context.Context, periodID int64, day time.Time, ordinal int, link string) error {
	msg := RowMessage{
		Kind:      "row",
		PeriodID:  periodID,
		Day:       day.Format("2006-01-02"),
		Ordinal:   ordinal,
		Link:      link,
		Timestamp: time.Now().UTC(),
	}
	return r.publish(ctx, msg)
}

// GenerateTemplate publishes a template request and returns the ref the
// sheet will be reachable under. The ref is minted here so it can be
// persisted immediately, before the consumer catches up.
func (r *RabbitMQ) GenerateTemplate(ctx context.Context, periodID int64, targetPerDay int, start, end time.Time) (string, error) {
	ref := ulid.MustNew(ulid.Timestamp(time.Now()), r.entropy).String()

	msg := TemplateMessage{
		Kind:         "template",
		Ref:          ref,
		PeriodID:     periodID,
		TargetPerDay: targetPerDay,
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		Timestamp:    time.Now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return "", err
	}

	r.logger.Info("report template requested", "period_id", periodID, "ref", ref)
	return ref, nil
}

func (r *RabbitMQ) publish(ctx context.Context, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if err := r.channel.Close(); err != nil {
		r.conn.Close()
		return err
	}
	return r.conn.Close()
}
