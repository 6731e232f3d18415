package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/message-adapter/internal/application/dto"
	"github.com/bibbank/message-adapter/internal/domain/port"
)

// ListMessages returns archived messages, newest first.
type ListMessages struct {
	archive port.MessageArchive
}

func NewListMessages(archive port.MessageArchive) *ListMessages {
	return &ListMessages{archive: archive}
}

func (uc *ListMessages) Execute(ctx context.Context, req dto.ListMessagesRequest) (dto.ListMessagesResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		return dto.ListMessagesResponse{}, fmt.Errorf("limit must be at most 100")
	}
	offset := req.Offset
	if offset < 0 {
		return dto.ListMessagesResponse{}, fmt.Errorf("offset must be >= 0")
	}

	instrs, total, err := uc.archive.ListRecent(ctx, limit, offset)
	if err != nil {
		return dto.ListMessagesResponse{}, fmt.Errorf("list messages: %w", err)
	}

	out := make([]dto.InstructionSummary, 0, len(instrs))
	for _, instr := range instrs {
		out = append(out, dto.ToInstructionSummary(instr))
	}

	return dto.ListMessagesResponse{
		Messages:   out,
		TotalCount: total,
	}, nil
}
