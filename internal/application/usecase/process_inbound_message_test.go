package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/message-adapter/internal/application/dto"
	"github.com/bibbank/message-adapter/internal/application/usecase"
	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/port"
	"github.com/bibbank/message-adapter/internal/domain/service"
	"github.com/bibbank/message-adapter/internal/events"
)

const validPacs008 = `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pacs.008.001.08">
  <FIToFICstmrCdtTrf>
    <GrpHdr><MsgId>MSGID-100</MsgId><CreDtTm>2026-08-01T10:30:00Z</CreDtTm></GrpHdr>
    <CdtTrfTxInf>
      <PmtId><InstrId>INSTR-100</InstrId><EndToEndId>E2E-100</EndToEndId></PmtId>
      <IntrBkSttlmAmt Ccy="USD">1250.00</IntrBkSttlmAmt>
      <Dbtr><Nm>Acme Corp</Nm></Dbtr>
      <DbtrAcct><Id><IBAN>US33BOFA12345678901234</IBAN></Id></DbtrAcct>
      <Cdtr><Nm>Globex Ltd</Nm></Cdtr>
      <CdtrAcct><Id><IBAN>GB82WEST12345698765432</IBAN></Id></CdtrAcct>
    </CdtTrfTxInf>
  </FIToFICstmrCdtTrf>
</Document>`

// A message that parses but fails validation: zero amount and an anonymous
// debtor.
const invalidPacs008 = `<Document>
  <FIToFICstmrCdtTrf>
    <GrpHdr><MsgId>MSGID-101</MsgId></GrpHdr>
    <CdtTrfTxInf>
      <PmtId><EndToEndId>E2E-101</EndToEndId></PmtId>
      <IntrBkSttlmAmt Ccy="USD">0.00</IntrBkSttlmAmt>
      <Cdtr><Nm>Globex Ltd</Nm></Cdtr>
    </CdtTrfTxInf>
  </FIToFICstmrCdtTrf>
</Document>`

// --- Mock implementations ---

type mockArchive struct {
	saveErr     error
	savedInstr  []model.PaymentInstruction
	savedReport []model.StatusReport
	savedXML    []string
}

func (m *mockArchive) Save(_ context.Context, instr model.PaymentInstruction, report model.StatusReport, statusXML string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedInstr = append(m.savedInstr, instr)
	m.savedReport = append(m.savedReport, report)
	m.savedXML = append(m.savedXML, statusXML)
	return nil
}

func (m *mockArchive) FindByMessageID(_ context.Context, messageID string) (model.PaymentInstruction, model.StatusReport, error) {
	for i, instr := range m.savedInstr {
		if instr.MessageID() == messageID {
			return instr, m.savedReport[i], nil
		}
	}
	return model.PaymentInstruction{}, model.StatusReport{}, fmt.Errorf("message %s: %w", messageID, port.ErrNotFound)
}

func (m *mockArchive) ListRecent(_ context.Context, limit, offset int) ([]model.PaymentInstruction, int, error) {
	return m.savedInstr, len(m.savedInstr), nil
}

type mockPublisher struct {
	publishErr error
	published  []events.DomainEvent
	topics     []string
}

func (m *mockPublisher) Publish(_ context.Context, topic string, evts ...events.DomainEvent) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.topics = append(m.topics, topic)
	m.published = append(m.published, evts...)
	return nil
}

type mockLedger struct {
	submitErr error
	commands  []port.CreditTransferCommand
}

func (m *mockLedger) SubmitCreditTransfer(_ context.Context, cmd port.CreditTransferCommand) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	m.commands = append(m.commands, cmd)
	return nil
}

// --- Helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	uc        *usecase.ProcessInboundMessage
	archive   *mockArchive
	publisher *mockPublisher
	ledger    *mockLedger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	adapter := service.NewMessageAdapter(discardLogger())
	archive := &mockArchive{}
	publisher := &mockPublisher{}
	ledger := &mockLedger{}

	uc := usecase.NewProcessInboundMessage(
		adapter,
		service.NewAcceptancePolicy(adapter),
		archive, ledger, publisher,
		nil, // metrics are optional
		discardLogger(),
	)
	return &fixture{uc: uc, archive: archive, publisher: publisher, ledger: ledger}
}

// --- Tests ---

func TestProcessInboundMessage_Accepted(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{
		RawXML: validPacs008,
		Source: "swift-connector",
	})
	require.NoError(t, err)

	assert.Equal(t, "MSGID-100", resp.Instruction.MessageID)
	assert.Equal(t, "ACCP", resp.Status)
	assert.Empty(t, resp.ReasonCode)
	assert.Contains(t, resp.StatusXML, "<TxSts>ACCP</TxSts>")

	// Accepted instructions reach the ledger.
	require.Len(t, f.ledger.commands, 1)
	cmd := f.ledger.commands[0]
	assert.Equal(t, "US33BOFA12345678901234", cmd.FromAccount)
	assert.Equal(t, "GB82WEST12345698765432", cmd.ToAccount)
	assert.Equal(t, "1250", cmd.Amount.String())
	assert.Equal(t, "USD", cmd.Currency)
	assert.Equal(t, "E2E-100", cmd.Reference)
	assert.Equal(t, "iso20022:pacs.008:MSGID-100", cmd.Provenance)

	// Archived exactly once with the generated report.
	require.Len(t, f.archive.savedInstr, 1)
	assert.Equal(t, resp.StatusXML, f.archive.savedXML[0])

	// Parsed + issued events published.
	require.Len(t, f.publisher.published, 2)
	assert.Equal(t, "iso20022.message.parsed", f.publisher.published[0].EventType())
	assert.Equal(t, "iso20022.status.issued", f.publisher.published[1].EventType())
	assert.Equal(t, usecase.TopicISOMessages, f.publisher.topics[0])
}

func TestProcessInboundMessage_RejectedByPolicy(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{
		RawXML: invalidPacs008,
		Source: "swift-connector",
	})
	require.NoError(t, err)

	assert.Equal(t, "RJCT", resp.Status)
	assert.Equal(t, "AM04", resp.ReasonCode)
	assert.Contains(t, resp.StatusXML, "<Cd>AM04</Cd>")

	// Rejected instructions never reach the ledger, but are archived.
	assert.Empty(t, f.ledger.commands)
	require.Len(t, f.archive.savedInstr, 1)
}

func TestProcessInboundMessage_MalformedInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{
		RawXML: "<not-closed",
		Source: "swift-connector",
	})

	var malformed *service.MalformedXMLError
	require.ErrorAs(t, err, &malformed)

	// Nothing archived, nothing to the ledger, one rejection event.
	assert.Empty(t, f.archive.savedInstr)
	assert.Empty(t, f.ledger.commands)
	require.Len(t, f.publisher.published, 1)
	assert.Equal(t, "iso20022.message.rejected", f.publisher.published[0].EventType())
}

func TestProcessInboundMessage_UnsupportedCurrency(t *testing.T) {
	f := newFixture(t)
	raw := validPacs008
	raw = replaceOnce(t, raw, `Ccy="USD"`, `Ccy="ZZZ"`)

	_, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{RawXML: raw})

	var currency *service.CurrencyValidationError
	require.ErrorAs(t, err, &currency)
	assert.Equal(t, "ZZZ", currency.Code)
}

func TestProcessInboundMessage_LedgerFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.ledger.submitErr = fmt.Errorf("ledger unavailable")

	_, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{RawXML: validPacs008})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledger unavailable")
	assert.Empty(t, f.archive.savedInstr)
}

func TestProcessInboundMessage_ArchiveFailureAborts(t *testing.T) {
	f := newFixture(t)
	f.archive.saveErr = fmt.Errorf("database down")

	_, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{RawXML: validPacs008})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database down")
}

func TestGetMessage_RoundTrip(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{RawXML: validPacs008})
	require.NoError(t, err)

	getUC := usecase.NewGetMessage(f.archive)
	resp, err := getUC.Execute(context.Background(), dto.GetMessageRequest{MessageID: "MSGID-100"})
	require.NoError(t, err)

	assert.Equal(t, "MSGID-100", resp.Instruction.MessageID)
	assert.Equal(t, "ACCP", resp.Status)
}

func TestGetMessage_RequiresID(t *testing.T) {
	getUC := usecase.NewGetMessage(&mockArchive{})

	_, err := getUC.Execute(context.Background(), dto.GetMessageRequest{})

	require.Error(t, err)
}

func TestListMessages_Defaults(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Execute(context.Background(), dto.ProcessMessageRequest{RawXML: validPacs008})
	require.NoError(t, err)

	listUC := usecase.NewListMessages(f.archive)
	resp, err := listUC.Execute(context.Background(), dto.ListMessagesRequest{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalCount)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "MSGID-100", resp.Messages[0].MessageID)
}

func TestListMessages_RejectsBadPagination(t *testing.T) {
	listUC := usecase.NewListMessages(&mockArchive{})

	_, err := listUC.Execute(context.Background(), dto.ListMessagesRequest{Limit: 101})
	require.Error(t, err)

	_, err = listUC.Execute(context.Background(), dto.ListMessagesRequest{Offset: -1})
	require.Error(t, err)
}

func replaceOnce(t *testing.T, s, old, new string) string {
	t.Helper()
	out := strings.Replace(s, old, new, 1)
	require.NotEqual(t, s, out, "fixture does not contain %q", old)
	return out
}

