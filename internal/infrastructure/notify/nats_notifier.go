package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"newscred/internal/domain"
	"newscred/internal/ports"
)

// NATSNotifier publishes analysis outcomes as JSON events so downstream
// consumers (moderation UI, mailers) hear about them asynchronously.
type NATSNotifier struct {
	conn          *nats.Conn
	subjectPrefix string
}

var _ ports.Notifier = (*NATSNotifier)(nil)

// NewNATSNotifier connects to the given NATS URL.
func NewNATSNotifier(url, subjectPrefix string) (*NATSNotifier, error) {
	conn, err := nats.Connect(url, nats.Name("newscred"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSNotifier{conn: conn, subjectPrefix: subjectPrefix}, nil
}

// PublishAnalysis emits the event on <prefix>.completed or
// <prefix>.discarded depending on the verdict.
func (n *NATSNotifier) PublishAnalysis(ctx context.Context, event domain.AnalysisEvent) error {
	if n.conn == nil {
		return fmt.Errorf("nats notifier misconfigured")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	subject := n.subjectPrefix + ".completed"
	if event.Discarded {
		subject = n.subjectPrefix + ".discarded"
	}
	if err := n.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains and closes the connection.
func (n *NATSNotifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}
