package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/valueobject"
	"github.com/bibbank/message-adapter/internal/events"
)

// ErrNotFound is returned by MessageArchive lookups that match nothing.
var ErrNotFound = errors.New("message not found")

// MessageArchive defines persistence operations for processed messages.
// The adapter itself never persists anything; the archive is the external
// collaborator that keeps the audit trail.
type MessageArchive interface {
	// Save persists a processed instruction together with the status report
	// issued for it and the generated pacs.002 XML.
	Save(ctx context.Context, instr model.PaymentInstruction, report model.StatusReport, statusXML string) error
	// FindByMessageID retrieves an archived instruction and its status report.
	FindByMessageID(ctx context.Context, messageID string) (model.PaymentInstruction, model.StatusReport, error)
	// ListRecent returns archived instructions, newest first, with pagination.
	ListRecent(ctx context.Context, limit, offset int) ([]model.PaymentInstruction, int, error)
}

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, events ...events.DomainEvent) error
}

// CreditTransferCommand is the generic command handed to the downstream
// ledger/settlement component for an accepted instruction. Its shape is an
// external contract; this service produces it but never interprets it.
type CreditTransferCommand struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    string
	Reference   string
	Memo        string
	Provenance  string
}

// LedgerGateway submits credit transfer commands to the settlement layer.
type LedgerGateway interface {
	SubmitCreditTransfer(ctx context.Context, cmd CreditTransferCommand) error
}

// DecisionPolicy decides the disposition of a parsed instruction. The
// adapter has no opinion on why a message is accepted or rejected; the
// policy supplies the status code, and for rejections a reason code and
// optional free text.
type DecisionPolicy interface {
	Decide(ctx context.Context, instr model.PaymentInstruction) (valueobject.TransactionStatus, string, string, error)
}
