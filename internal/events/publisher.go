package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// Menu event types
const (
	MenuImported = "menu.imported"
)

// MenuImportedEvent is published after a workbook import finishes, whether
// or not individual records failed.
type MenuImportedEvent struct {
	EventType    string    `json:"event_type"`
	ImportID     string    `json:"import_id"`
	CompanyID    uint      `json:"company_id"`
	FileName     string    `json:"file_name"`
	TotalRecords int       `json:"total_records"`
	SuccessCount int       `json:"success_count"`
	FailedCount  int       `json:"failed_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher publishes menu events to NATS
type Publisher struct {
	conn   *nats.Conn
	logger *logrus.Entry
}

// NewPublisher creates a new menu events publisher
func NewPublisher(logger *logrus.Logger) (*Publisher, error) {
	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		return nil, fmt.Errorf("NATS_URL not set")
	}

	conn, err := nats.Connect(natsURL,
		nats.Name("menu-service-publisher"),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:   conn,
		logger: logger.WithField("component", "events.publisher"),
	}, nil
}

// PublishMenuImported publishes a menu imported event
func (p *Publisher) PublishMenuImported(ctx context.Context, event MenuImportedEvent) error {
	event.EventType = MenuImported
	event.Timestamp = time.Now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.conn.Publish(MenuImported, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", MenuImported, err)
	}

	p.logger.WithFields(logrus.Fields{
		"import_id":  event.ImportID,
		"company_id": event.CompanyID,
	}).Info("Published menu imported event")
	return nil
}

// IsConnected returns true if connected to NATS
func (p *Publisher) IsConnected() bool {
	return p.conn != nil && p.conn.IsConnected()
}

// Close closes the publisher connection
func (p *Publisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
