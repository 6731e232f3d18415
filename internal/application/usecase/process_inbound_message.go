package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bibbank/message-adapter/internal/application/dto"
	"github.com/bibbank/message-adapter/internal/domain/event"
	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/domain/service"
	"github.com/bibbank/message-adapter/internal/events"
	"github.com/bibbank/message-adapter/internal/observability"
)

const TopicISOMessages = "bib.iso20022.messages"

// ProcessInboundMessage runs the full inbound pipeline for one pacs.008
// message: parse, decide, generate the pacs.002, hand accepted instructions
// to the ledger, archive, and publish events.
type ProcessInboundMessage struct {
	adapter   *service.MessageAdapter
	policy    port.DecisionPolicy
	archive   port.MessageArchive
	ledger    port.LedgerGateway
	publisher port.EventPublisher
	metrics   *observability.AdapterMetrics // optional, may be nil
	logger    *slog.Logger
}

func NewProcessInboundMessage(
	adapter *service.MessageAdapter,
	policy port.DecisionPolicy,
	archive port.MessageArchive,
	ledger port.LedgerGateway,
	publisher port.EventPublisher,
	metrics *observability.AdapterMetrics,
	logger *slog.Logger,
) *ProcessInboundMessage {
	return &ProcessInboundMessage{
		adapter:   adapter,
		policy:    policy,
		archive:   archive,
		ledger:    ledger,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (uc *ProcessInboundMessage) Execute(ctx context.Context, req dto.ProcessMessageRequest) (dto.ProcessMessageResponse, error) {
	instr, err := uc.adapter.ParseCreditTransfer(req.RawXML)
	if err != nil {
		kind := errorKind(err)
		uc.metrics.ParseFailed(ctx, kind)
		uc.logger.Warn("inbound message rejected",
			"source", req.Source,
			"kind", kind,
			"error", err,
		)
		if pubErr := uc.publisher.Publish(ctx, TopicISOMessages,
			event.NewMessageRejected(req.Source, kind, err.Error()),
		); pubErr != nil {
			uc.logger.Error("failed to publish rejection event", "error", pubErr)
		}
		// Typed parse errors propagate unchanged so callers can
		// distinguish the failure kinds with errors.As.
		return dto.ProcessMessageResponse{}, fmt.Errorf("parse credit transfer: %w", err)
	}
	uc.metrics.MessageParsed(ctx)

	status, reasonCode, additionalInfo, err := uc.policy.Decide(ctx, instr)
	if err != nil {
		return dto.ProcessMessageResponse{}, fmt.Errorf("decide disposition: %w", err)
	}

	statusReport, err := model.NewStatusReport(instr, status, reasonCode, additionalInfo)
	if err != nil {
		return dto.ProcessMessageResponse{}, fmt.Errorf("build status report: %w", err)
	}
	statusXML, err := uc.adapter.GenerateStatusReport(statusReport)
	if err != nil {
		return dto.ProcessMessageResponse{}, fmt.Errorf("generate status report: %w", err)
	}
	uc.metrics.ReportGenerated(ctx, status.String())

	if status.IsAccepted() {
		cmd := creditTransferCommand(instr)
		if err := uc.ledger.SubmitCreditTransfer(ctx, cmd); err != nil {
			return dto.ProcessMessageResponse{}, fmt.Errorf("submit credit transfer to ledger: %w", err)
		}
	}

	if err := uc.archive.Save(ctx, instr, statusReport, statusXML); err != nil {
		return dto.ProcessMessageResponse{}, fmt.Errorf("archive message: %w", err)
	}

	evts := []events.DomainEvent{
		event.NewInstructionParsed(
			instr.MessageID(), instr.InstructionID(), instr.EndToEndID(),
			instr.Amount().Value(), instr.Amount().Currency(), req.Source,
		),
		event.NewStatusReportIssued(
			statusReport.ReportID(), statusReport.OriginalMessageID(),
			statusReport.Status().String(), statusReport.ReasonCode(),
		),
	}
	if err := uc.publisher.Publish(ctx, TopicISOMessages, evts...); err != nil {
		return dto.ProcessMessageResponse{}, fmt.Errorf("publish events: %w", err)
	}

	uc.logger.Info("processed inbound message",
		"message_id", instr.MessageID(),
		"status", status.String(),
		"source", req.Source,
	)

	return dto.ProcessMessageResponse{
		Instruction: dto.ToInstructionSummary(instr),
		ReportID:    statusReport.ReportID(),
		Status:      statusReport.Status().String(),
		ReasonCode:  statusReport.ReasonCode(),
		StatusXML:   statusXML,
	}, nil
}

func errorKind(err error) string {
	var malformed *service.MalformedXMLError
	var schema *service.SchemaValidationError
	var currency *service.CurrencyValidationError
	switch {
	case errors.As(err, &malformed):
		return "malformed_xml"
	case errors.As(err, &schema):
		return "schema_validation"
	case errors.As(err, &currency):
		return "currency_validation"
	default:
		return "unknown"
	}
}
