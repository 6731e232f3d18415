package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/message-adapter/internal/application/dto"
	"github.com/bibbank/message-adapter/internal/domain/port"
)

// GetMessage retrieves one archived message by its ISO message id.
type GetMessage struct {
	archive port.MessageArchive
}

func NewGetMessage(archive port.MessageArchive) *GetMessage {
	return &GetMessage{archive: archive}
}

func (uc *GetMessage) Execute(ctx context.Context, req dto.GetMessageRequest) (dto.GetMessageResponse, error) {
	if req.MessageID == "" {
		return dto.GetMessageResponse{}, fmt.Errorf("message id is required")
	}

	instr, report, err := uc.archive.FindByMessageID(ctx, req.MessageID)
	if err != nil {
		return dto.GetMessageResponse{}, fmt.Errorf("find message %s: %w", req.MessageID, err)
	}

	return dto.GetMessageResponse{
		Instruction: dto.ToInstructionSummary(instr),
		ReportID:    report.ReportID(),
		Status:      report.Status().String(),
		ReasonCode:  report.ReasonCode(),
	}, nil
}
