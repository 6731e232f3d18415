package kafka

import (
	"context"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
)

func TestNewProducer(t *testing.T) {
	p := NewProducer(Config{
		Brokers: []string{"localhost:9092", "localhost:9093"},
	})
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.brokers[0] != "localhost:9092" {
		t.Errorf("expected broker localhost:9092, got %s", p.brokers[0])
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
}

func TestToRecord(t *testing.T) {
	record := toRecord(Message{
		Key:   []byte("MSGID-001"),
		Value: []byte(`{"message_id":"MSGID-001"}`),
		Headers: map[string]string{
			"event_type": "iso20022.message.parsed",
			"event_id":   "abc-def-ghi",
		},
	})

	if string(record.Key) != "MSGID-001" {
		t.Errorf("expected key MSGID-001, got %s", string(record.Key))
	}
	if len(record.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(record.Headers))
	}
	got := map[string]string{}
	for _, h := range record.Headers {
		got[h.Key] = string(h.Value)
	}
	if got["event_type"] != "iso20022.message.parsed" {
		t.Errorf("unexpected event_type header: %s", got["event_type"])
	}
}

func TestWriterReuse(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w1 := p.writer("topic-a")
	if w1 == nil {
		t.Fatal("expected non-nil writer")
	}

	// Same topic reuses the same writer instance.
	if w2 := p.writer("topic-a"); w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	// Different topic gets its own writer.
	if w3 := p.writer("topic-b"); w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}

	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestWriterConfiguration(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	w := p.writer("topic-a")
	if _, ok := w.Balancer.(*kafkago.Hash); !ok {
		t.Errorf("expected hash balancer for keyed ordering, got %T", w.Balancer)
	}
	if w.RequiredAcks != kafkago.RequireAll {
		t.Errorf("expected RequireAll acks, got %v", w.RequiredAcks)
	}
}

func TestPublishNoMessages(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	// Nothing to write: no error and no writer created.
	if err := p.Publish(context.Background(), "topic-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.writers) != 0 {
		t.Errorf("expected no writers for empty publish, got %d", len(p.writers))
	}
}

func TestProducerClose(t *testing.T) {
	p := NewProducer(Config{Brokers: []string{"localhost:9092"}})

	_ = p.writer("topic-a")
	_ = p.writer("topic-b")

	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	if len(p.writers) != 0 {
		t.Errorf("expected 0 writers after close, got %d", len(p.writers))
	}
}
