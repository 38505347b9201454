// Package broker publishes audit events to an AMQP topic exchange.
package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/pentest-stories/internal/config"
	"github.com/heartmarshall/pentest-stories/internal/domain"
)

// channel is the subset of *amqp.Channel used by Publisher.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends audit events as persistent JSON messages.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	log      *slog.Logger
}

// Dial connects to the broker and declares the durable topic exchange.
func Dial(cfg config.BrokerConfig, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("broker dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("broker channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("broker declare exchange %s: %w", cfg.Exchange, err)
	}

	p := newPublisher(ch, cfg.Exchange, logger)
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		log:      logger.With("adapter", "broker"),
	}
}

// auditMessage is the wire form of an audit event.
type auditMessage struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Table     string         `json:"table_name"`
	RecordID  *string        `json:"record_id,omitempty"`
	ActorID   *string        `json:"actor_id,omitempty"`
	NewValues map[string]any `json:"new_values,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// RoutingKey returns the topic key for an audit action, e.g. audit.password_reset.
func RoutingKey(action domain.AuditAction) string {
	return "audit." + strings.ToLower(string(action))
}

// PublishAudit publishes one audit entry. IP and user agent are not sent.
func (p *Publisher) PublishAudit(ctx context.Context, e domain.AuditEntry) error {
	msg := auditMessage{
		ID:        e.ID.String(),
		Action:    string(e.Action),
		Table:     e.TableName,
		RecordID:  e.RecordID,
		NewValues: e.NewValues,
		CreatedAt: e.CreatedAt.UTC(),
	}
	if e.UserID != nil {
		actor := e.UserID.String()
		msg.ActorID = &actor
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("broker marshal audit event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, RoutingKey(e.Action), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("broker publish %s: %w", e.Action, err)
	}

	p.log.DebugContext(ctx, "audit event published", slog.String("action", msg.Action), slog.String("id", msg.ID))
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping(context.Context) error {
	if p.conn != nil && p.conn.IsClosed() {
		return errors.New("broker connection closed")
	}
	return nil
}

// Nop discards events. It is used when no broker URL is configured.
type Nop struct{}

// PublishAudit does nothing.
func (Nop) PublishAudit(context.Context, domain.AuditEntry) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }

// Ping always succeeds.
func (Nop) Ping(context.Context) error { return nil }
