package amqpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"ave-engine/internal/config/configs"
	"ave-engine/internal/core/domain"
)

const eventRecorded = "calculation.recorded"

// RecordedEvent is the message body announcing a new calculation log.
// Consumers fetch the full log by ID when they need the breakdown.
type RecordedEvent struct {
	ID              uuid.UUID       `json:"id"`
	IdempotencyKey  uuid.UUID       `json:"idempotency_key"`
	CalculationType string          `json:"calculation_type"`
	ActorID         int64           `json:"actor_id"`
	CampaignID      *int64          `json:"campaign_id"`
	BrandID         *int64          `json:"brand_id"`
	FinalValue      decimal.Decimal `json:"final_value"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newRecordedEvent(log domain.CalculationLog) RecordedEvent {
	return RecordedEvent{
		ID:              log.ID,
		IdempotencyKey:  log.IdempotencyKey,
		CalculationType: log.CalculationType,
		ActorID:         log.ActorID,
		CampaignID:      log.CampaignID,
		BrandID:         log.BrandID,
		FinalValue:      log.Results.FinalValue,
		Currency:        log.Results.Currency,
		CreatedAt:       log.CreatedAt,
	}
}

// Publisher implements port.EventPublisher on a RabbitMQ topic exchange.
type Publisher struct {
	mu         sync.Mutex
	conn       *amqp.Connection
	ch         *amqp.Channel
	exchange   string
	routingKey string
}

// NewPublisher dials RabbitMQ and declares a durable topic exchange.
func NewPublisher(cfg configs.AMQP) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	return &Publisher{conn: conn, ch: ch, exchange: cfg.Exchange, routingKey: cfg.RoutingKey}, nil
}

func (p *Publisher) PublishRecorded(ctx context.Context, log domain.CalculationLog) error {
	body, err := json.Marshal(newRecordedEvent(log))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    log.ID.String(),
		Timestamp:    log.CreatedAt,
		Type:         eventRecorded,
		Body:         body,
	})
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.ch.Close()
	return p.conn.Close()
}
