package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/message-adapter/internal/application/dto"
	"github.com/bibbank/message-adapter/internal/application/usecase"
	"github.com/bibbank/message-adapter/internal/auth"
	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/domain/service"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// Compile-time assertion that MessageHandler implements MessageAdapterServiceServer.
var _ MessageAdapterServiceServer = (*MessageHandler)(nil)

// MessageHandler implements the gRPC MessageAdapterService server.
type MessageHandler struct {
	UnimplementedMessageAdapterServiceServer
	processMessage *usecase.ProcessInboundMessage
	getMessage     *usecase.GetMessage
	listMessages   *usecase.ListMessages

	logger *slog.Logger
}

func NewMessageHandler(
	processMessage *usecase.ProcessInboundMessage,
	getMessage *usecase.GetMessage,
	listMessages *usecase.ListMessages,
	logger *slog.Logger,
) *MessageHandler {
	return &MessageHandler{
		processMessage: processMessage,
		getMessage:     getMessage,
		listMessages:   listMessages,

		logger: logger}
}

// SubmitMessage implements MessageAdapterServiceServer by delegating to HandleSubmitMessage.
func (h *MessageHandler) SubmitMessage(ctx context.Context, req *SubmitMessageRequest) (*SubmitMessageResponse, error) {
	return h.HandleSubmitMessage(ctx, req)
}

// GetMessage implements MessageAdapterServiceServer by delegating to HandleGetMessage.
func (h *MessageHandler) GetMessage(ctx context.Context, req *GetMessageRequestMsg) (*GetMessageResponseMsg, error) {
	return h.HandleGetMessage(ctx, req)
}

// ListMessages implements MessageAdapterServiceServer by delegating to HandleListMessages.
func (h *MessageHandler) ListMessages(ctx context.Context, req *ListMessagesRequestMsg) (*ListMessagesResponseMsg, error) {
	return h.HandleListMessages(ctx, req)
}

// Temporary gRPC message types until proto generation is wired.

type SubmitMessageRequest struct {
	RawXML string `json:"raw_xml"`
	Source string `json:"source,omitempty"`
}

type SubmitMessageResponse struct {
	Instruction *InstructionMsg `json:"instruction"`
	ReportID    string          `json:"report_id"`
	Status      string          `json:"status"`
	ReasonCode  string          `json:"reason_code,omitempty"`
	StatusXML   string          `json:"status_xml"`
}

type GetMessageRequestMsg struct {
	MessageID string `json:"message_id"`
}

type InstructionMsg struct {
	MessageID       string `json:"message_id"`
	InstructionID   string `json:"instruction_id"`
	EndToEndID      string `json:"end_to_end_id"`
	TransactionID   string `json:"transaction_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	DebtorName      string `json:"debtor_name"`
	DebtorAccount   string `json:"debtor_account"`
	DebtorBIC       string `json:"debtor_bic,omitempty"`
	CreditorName    string `json:"creditor_name"`
	CreditorAccount string `json:"creditor_account"`
	CreditorBIC     string `json:"creditor_bic,omitempty"`
	SettlementDate  string `json:"settlement_date,omitempty"`
	RemittanceInfo  string `json:"remittance_info,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type GetMessageResponseMsg struct {
	Instruction *InstructionMsg `json:"instruction"`
	ReportID    string          `json:"report_id"`
	Status      string          `json:"status"`
	ReasonCode  string          `json:"reason_code,omitempty"`
}

type ListMessagesRequestMsg struct {
	PageSize int32 `json:"page_size"`
	Offset   int32 `json:"offset"`
}

type ListMessagesResponseMsg struct {
	Messages   []*InstructionMsg `json:"messages"`
	TotalCount int32             `json:"total_count"`
}

func (h *MessageHandler) HandleSubmitMessage(ctx context.Context, req *SubmitMessageRequest) (*SubmitMessageResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.RawXML == "" {
		return nil, status.Error(codes.InvalidArgument, "raw_xml is required")
	}

	result, err := h.processMessage.Execute(ctx, dto.ProcessMessageRequest{
		RawXML: req.RawXML,
		Source: req.Source,
	})
	if err != nil {
		return nil, h.mapProcessError(err)
	}

	return &SubmitMessageResponse{
		Instruction: toInstructionMsg(result.Instruction),
		ReportID:    result.ReportID,
		Status:      result.Status,
		ReasonCode:  result.ReasonCode,
		StatusXML:   result.StatusXML,
	}, nil
}

func (h *MessageHandler) HandleGetMessage(ctx context.Context, req *GetMessageRequestMsg) (*GetMessageResponseMsg, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.MessageID == "" {
		return nil, status.Error(codes.InvalidArgument, "message_id is required")
	}

	result, err := h.getMessage.Execute(ctx, dto.GetMessageRequest{
		MessageID: req.MessageID,
	})
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "message %s not found", req.MessageID)
		}
		h.logger.Error("handler error", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &GetMessageResponseMsg{
		Instruction: toInstructionMsg(result.Instruction),
		ReportID:    result.ReportID,
		Status:      result.Status,
		ReasonCode:  result.ReasonCode,
	}, nil
}

func (h *MessageHandler) HandleListMessages(ctx context.Context, req *ListMessagesRequestMsg) (*ListMessagesResponseMsg, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperator, auth.RoleAuditor, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = 20
	}
	if pageSize < 0 || pageSize > 100 {
		return nil, status.Error(codes.InvalidArgument, "page_size must be between 1 and 100")
	}
	if req.Offset < 0 {
		return nil, status.Error(codes.InvalidArgument, "offset must be >= 0")
	}

	result, err := h.listMessages.Execute(ctx, dto.ListMessagesRequest{
		Limit:  int(pageSize),
		Offset: int(req.Offset),
	})
	if err != nil {
		h.logger.Error("handler error", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	var messages []*InstructionMsg
	for _, m := range result.Messages {
		messages = append(messages, toInstructionMsg(m))
	}

	return &ListMessagesResponseMsg{
		Messages:   messages,
		TotalCount: int32(result.TotalCount), //nolint:gosec // bounded
	}, nil
}

// mapProcessError translates the typed parse failures into InvalidArgument
// with a caller-actionable detail; anything else stays an opaque Internal.
func (h *MessageHandler) mapProcessError(err error) error {
	var malformed *service.MalformedXMLError
	var schema *service.SchemaValidationError
	var currency *service.CurrencyValidationError
	switch {
	case errors.As(err, &malformed):
		return status.Errorf(codes.InvalidArgument, "malformed xml: %s", malformed.Detail)
	case errors.As(err, &schema):
		return status.Errorf(codes.InvalidArgument, "schema validation: %s: %s", schema.Field, schema.Detail)
	case errors.As(err, &currency):
		return status.Errorf(codes.InvalidArgument, "unsupported currency: %s", currency.Code)
	default:
		h.logger.Error("handler error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func toInstructionMsg(s dto.InstructionSummary) *InstructionMsg {
	return &InstructionMsg{
		MessageID:       s.MessageID,
		InstructionID:   s.InstructionID,
		EndToEndID:      s.EndToEndID,
		TransactionID:   s.TransactionID,
		Amount:          s.Amount,
		Currency:        s.Currency,
		DebtorName:      s.DebtorName,
		DebtorAccount:   s.DebtorAccount,
		DebtorBIC:       s.DebtorBIC,
		CreditorName:    s.CreditorName,
		CreditorAccount: s.CreditorAccount,
		CreditorBIC:     s.CreditorBIC,
		SettlementDate:  s.SettlementDate,
		RemittanceInfo:  s.RemittanceInfo,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}
