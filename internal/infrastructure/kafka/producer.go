package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Message is one record bound for a topic. Keys carry the ISO message id (or
// the ledger command reference), so the hash balancer keeps every record for
// one payment on the same partition and consumers see them in order.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Producer publishes records, keeping one writer per topic. The adapter
// writes to a small fixed set of topics (domain events plus ledger commands),
// so writers are created lazily and the map stays tiny.
type Producer struct {
	brokers []string

	mu      sync.Mutex
	writers map[string]*kafkago.Writer
}

func NewProducer(cfg Config) *Producer {
	return &Producer{
		brokers: cfg.Brokers,
		writers: make(map[string]*kafkago.Writer),
	}
}

// Publish writes all messages to the topic in one batch. Status-report
// traffic is many small records; the writer lingers briefly to coalesce them
// and requires acks from all replicas so the audit trail is durable.
func (p *Producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	records := make([]kafkago.Message, len(messages))
	for i, msg := range messages {
		records[i] = toRecord(msg)
	}

	if err := p.writer(topic).WriteMessages(ctx, records...); err != nil {
		return fmt.Errorf("write %d records to %s: %w", len(records), topic, err)
	}
	return nil
}

// Close flushes and closes every writer.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close writer for %s: %w", topic, err))
		}
	}
	p.writers = make(map[string]*kafkago.Writer)
	return errors.Join(errs...)
}

func (p *Producer) writer(topic string) *kafkago.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	w := &kafkago.Writer{
		Addr:         kafkago.TCP(p.brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		BatchSize:    64,
		BatchTimeout: 25 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafkago.RequireAll,
		Compression:  kafkago.Snappy,
	}
	p.writers[topic] = w
	return w
}

func toRecord(msg Message) kafkago.Message {
	record := kafkago.Message{
		Key:   msg.Key,
		Value: msg.Value,
	}
	for k, v := range msg.Headers {
		record.Headers = append(record.Headers, kafkago.Header{Key: k, Value: []byte(v)})
	}
	return record
}
