package service

import (
	"log/slog"
	"sync"

	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

// MessageAdapter translates between ISO 20022 wire messages and the
// canonical PaymentInstruction. Parse and generate are pure, synchronous
// transforms over in-memory strings; the only mutable state is a pair of
// operational counters guarded by a mutex, so a single instance is safe to
// share across goroutines.
type MessageAdapter struct {
	logger     *slog.Logger
	currencies valueobject.CurrencySet

	mu        sync.Mutex
	parsed    uint64
	generated uint64
}

// NewMessageAdapter creates a MessageAdapter using the default currency
// allow-list.
func NewMessageAdapter(logger *slog.Logger) *MessageAdapter {
	return NewMessageAdapterWithCurrencies(logger, valueobject.DefaultCurrencySet())
}

// NewMessageAdapterWithCurrencies creates a MessageAdapter with a custom
// currency allow-list.
func NewMessageAdapterWithCurrencies(logger *slog.Logger, currencies valueobject.CurrencySet) *MessageAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageAdapter{
		logger:     logger,
		currencies: currencies,
	}
}

// Stats returns the number of messages parsed and status reports generated
// by this instance.
func (a *MessageAdapter) Stats() (parsed, generated uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.parsed, a.generated
}

// ResetStats zeroes the operational counters.
func (a *MessageAdapter) ResetStats() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.parsed = 0
	a.generated = 0
}

func (a *MessageAdapter) recordParsed() {
	a.mu.Lock()
	a.parsed++
	a.mu.Unlock()
}

func (a *MessageAdapter) recordGenerated() {
	a.mu.Lock()
	a.generated++
	a.mu.Unlock()
}
