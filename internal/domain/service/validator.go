package service

import (
	"fmt"

	"github.com/bibbank/message-adapter/internal/domain/model"
)

// ValidateInstruction checks an instruction against the acceptance rules
// and returns every violated rule, not just the first: callers report all
// problems in one pass. Pure function, no side effects.
func (a *MessageAdapter) ValidateInstruction(instr model.PaymentInstruction) (bool, []string) {
	var violations []string

	if !instr.Amount().IsPositive() {
		violations = append(violations, fmt.Sprintf("amount must be strictly positive, got %s", instr.Amount().Value()))
	}
	if !a.currencies.Contains(instr.Amount().Currency()) {
		violations = append(violations, fmt.Sprintf("currency %q is not in the supported set", instr.Amount().Currency()))
	}
	if !instr.Debtor().IsIdentified() {
		violations = append(violations, "debtor has no identifying field (account id or name)")
	}
	if !instr.Creditor().IsIdentified() {
		violations = append(violations, "creditor has no identifying field (account id or name)")
	}

	return len(violations) == 0, violations
}

// VerifyLosslessTranslation asserts that a re-parse of the same message
// yields identical critical fields: amount magnitude, currency, and
// instruction id. There is zero tolerance for drift introduced by the
// parser itself; a mismatch here is an adapter defect, not an input
// problem.
func (a *MessageAdapter) VerifyLosslessTranslation(original, reparsed model.PaymentInstruction) error {
	if !original.Amount().Value().Equal(reparsed.Amount().Value()) {
		return &LosslessTranslationError{
			Field:    "amount",
			Original: original.Amount().Value().String(),
			Reparsed: reparsed.Amount().Value().String(),
		}
	}
	if original.Amount().Currency() != reparsed.Amount().Currency() {
		return &LosslessTranslationError{
			Field:    "currency",
			Original: original.Amount().Currency(),
			Reparsed: reparsed.Amount().Currency(),
		}
	}
	if original.InstructionID() != reparsed.InstructionID() {
		return &LosslessTranslationError{
			Field:    "instruction_id",
			Original: original.InstructionID(),
			Reparsed: reparsed.InstructionID(),
		}
	}
	return nil
}
