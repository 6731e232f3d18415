package usecase

import (
	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/port"
)

// creditTransferCommand translates an accepted instruction into the generic
// credit transfer command the settlement layer consumes. The provenance tag
// lets the ledger trace every posting back to the originating wire message.
func creditTransferCommand(instr model.PaymentInstruction) port.CreditTransferCommand {
	reference := instr.EndToEndID()
	if reference == "" {
		reference = instr.InstructionID()
	}
	return port.CreditTransferCommand{
		FromAccount: instr.Debtor().AccountID(),
		ToAccount:   instr.Creditor().AccountID(),
		Amount:      instr.Amount().Value(),
		Currency:    instr.Amount().Currency(),
		Reference:   reference,
		Memo:        instr.RemittanceInfo(),
		Provenance:  "iso20022:pacs.008:" + instr.MessageID(),
	}
}
