package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

// Compile-time interface check.
var _ port.MessageArchive = (*MessageArchiveRepo)(nil)

// MessageArchiveRepo implements MessageArchive using PostgreSQL.
type MessageArchiveRepo struct {
	pool *pgxpool.Pool
}

func NewMessageArchiveRepo(pool *pgxpool.Pool) *MessageArchiveRepo {
	return &MessageArchiveRepo{pool: pool}
}

func (r *MessageArchiveRepo) Save(ctx context.Context, instr model.PaymentInstruction, report model.StatusReport, statusXML string) error {
	var settlementDate *time.Time
	if !instr.SettlementDate().IsZero() {
		d := instr.SettlementDate()
		settlementDate = &d
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO iso_messages (
			message_id, instruction_id, end_to_end_id, transaction_id,
			amount, currency,
			debtor_name, debtor_account, debtor_bic, debtor_address, debtor_country,
			creditor_name, creditor_account, creditor_bic, creditor_address, creditor_country,
			debtor_agent_bic, creditor_agent_bic,
			settlement_date, remittance_info, raw_xml,
			report_id, status, reason_code, additional_info, status_xml,
			message_created_at, received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		ON CONFLICT (message_id) DO UPDATE SET
			report_id = EXCLUDED.report_id,
			status = EXCLUDED.status,
			reason_code = EXCLUDED.reason_code,
			additional_info = EXCLUDED.additional_info,
			status_xml = EXCLUDED.status_xml,
			received_at = EXCLUDED.received_at
	`,
		instr.MessageID(), instr.InstructionID(), instr.EndToEndID(), instr.TransactionID(),
		instr.Amount().Value(), instr.Amount().Currency(),
		instr.Debtor().Name(), instr.Debtor().AccountID(), instr.Debtor().BIC(), instr.Debtor().Address(), instr.Debtor().Country(),
		instr.Creditor().Name(), instr.Creditor().AccountID(), instr.Creditor().BIC(), instr.Creditor().Address(), instr.Creditor().Country(),
		instr.DebtorAgent().BIC(), instr.CreditorAgent().BIC(),
		settlementDate, instr.RemittanceInfo(), instr.RawXML(),
		report.ReportID(), report.Status().String(), report.ReasonCode(), report.AdditionalInfo(), statusXML,
		instr.CreatedAt(), report.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("upsert iso message: %w", err)
	}
	return nil
}

func (r *MessageArchiveRepo) FindByMessageID(ctx context.Context, messageID string) (model.PaymentInstruction, model.StatusReport, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT message_id, instruction_id, end_to_end_id, transaction_id,
			amount, currency,
			debtor_name, debtor_account, debtor_bic, debtor_address, debtor_country,
			creditor_name, creditor_account, creditor_bic, creditor_address, creditor_country,
			debtor_agent_bic, creditor_agent_bic,
			settlement_date, remittance_info, raw_xml,
			report_id, status, reason_code, additional_info,
			message_created_at, received_at
		FROM iso_messages WHERE message_id = $1
	`, messageID)

	instr, report, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PaymentInstruction{}, model.StatusReport{}, fmt.Errorf("message %s: %w", messageID, port.ErrNotFound)
		}
		return model.PaymentInstruction{}, model.StatusReport{}, fmt.Errorf("query iso message: %w", err)
	}
	return instr, report, nil
}

func (r *MessageArchiveRepo) ListRecent(ctx context.Context, limit, offset int) ([]model.PaymentInstruction, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM iso_messages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count iso messages: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT message_id FROM iso_messages
		ORDER BY received_at DESC, message_id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query iso messages: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, 0, fmt.Errorf("scan message id: %w", err)
		}
		ids = append(ids, id)
	}

	var instructions []model.PaymentInstruction
	for _, id := range ids {
		instr, _, err := r.FindByMessageID(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		instructions = append(instructions, instr)
	}

	return instructions, total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (model.PaymentInstruction, model.StatusReport, error) {
	var (
		messageID, instructionID, endToEndID, transactionID          string
		amount                                                       decimal.Decimal
		currency                                                     string
		dbtrName, dbtrAcct, dbtrBIC, dbtrAddr, dbtrCtry              string
		cdtrName, cdtrAcct, cdtrBIC, cdtrAddr, cdtrCtry              string
		dbtrAgtBIC, cdtrAgtBIC                                       string
		settlementDate                                               *time.Time
		remittanceInfo, rawXML                                       string
		reportID, statusStr, reasonCode, additionalInfo              string
		messageCreatedAt, receivedAt                                 time.Time
	)

	err := row.Scan(
		&messageID, &instructionID, &endToEndID, &transactionID,
		&amount, &currency,
		&dbtrName, &dbtrAcct, &dbtrBIC, &dbtrAddr, &dbtrCtry,
		&cdtrName, &cdtrAcct, &cdtrBIC, &cdtrAddr, &cdtrCtry,
		&dbtrAgtBIC, &cdtrAgtBIC,
		&settlementDate, &remittanceInfo, &rawXML,
		&reportID, &statusStr, &reasonCode, &additionalInfo,
		&messageCreatedAt, &receivedAt,
	)
	if err != nil {
		return model.PaymentInstruction{}, model.StatusReport{}, err
	}

	// The row passed currency validation on ingest, possibly against a
	// custom allow-list, so the amount is rebuilt without re-validating.
	paymentAmount := valueobject.ReconstructPaymentAmount(amount, currency)

	var sttlmDt time.Time
	if settlementDate != nil {
		sttlmDt = *settlementDate
	}

	instr := model.NewPaymentInstruction(
		messageID, instructionID, endToEndID, transactionID,
		model.NewPaymentParty(dbtrName, dbtrAcct, dbtrBIC, dbtrAddr, dbtrCtry),
		model.NewPaymentParty(cdtrName, cdtrAcct, cdtrBIC, cdtrAddr, cdtrCtry),
		model.NewPaymentParty("", "", dbtrAgtBIC, "", ""),
		model.NewPaymentParty("", "", cdtrAgtBIC, "", ""),
		paymentAmount,
		messageCreatedAt, sttlmDt,
		remittanceInfo, rawXML,
	)

	status, err := valueobject.NewTransactionStatus(statusStr)
	if err != nil {
		return model.PaymentInstruction{}, model.StatusReport{}, fmt.Errorf("rebuild status: %w", err)
	}

	report := model.ReconstructStatusReport(
		reportID, messageID, instructionID, endToEndID,
		status, reasonCode, additionalInfo, receivedAt,
	)

	return instr, report, nil
}
