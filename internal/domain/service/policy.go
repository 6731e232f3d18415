package service

import (
	"context"
	"strings"

	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

var _ port.DecisionPolicy = (*AcceptancePolicy)(nil)

// AcceptancePolicy is the default decision policy: accept any instruction
// that passes validation, reject everything else with reason AM04 and the
// full violation list as additional information. Richer policies (sanctions
// screening, liquidity checks) live outside this service and replace this
// implementation behind the same port.
type AcceptancePolicy struct {
	adapter *MessageAdapter
}

func NewAcceptancePolicy(adapter *MessageAdapter) *AcceptancePolicy {
	return &AcceptancePolicy{adapter: adapter}
}

func (p *AcceptancePolicy) Decide(_ context.Context, instr model.PaymentInstruction) (valueobject.TransactionStatus, string, string, error) {
	ok, violations := p.adapter.ValidateInstruction(instr)
	if ok {
		return valueobject.StatusAccepted, "", "", nil
	}
	return valueobject.StatusRejected, "AM04", strings.Join(violations, "; "), nil
}
