package service

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

const (
	pacs002Namespace = "urn:iso:std:iso:20022:tech:xsd:pacs.002.001.10"
	// OrgnlMsgNmId always names the originating message definition.
	pacs008MessageName = "pacs.008.001.08"
)

// GenerateStatusReport serializes a StatusReport as a pacs.002 FI-to-FI
// payment status report. Output is deterministic given identical input,
// modulo the report id and creation timestamp carried by the report itself.
// The reason block is emitted only when a reason code is present; its
// absence is a structural difference consumers depend on.
func (a *MessageAdapter) GenerateStatusReport(report model.StatusReport) (string, error) {
	doc := pacs002Document{
		XMLName: xml.Name{Local: "Document"},
		Xmlns:   pacs002Namespace,
		FIToFIPmtStsRpt: pacs002FIToFIPmtStsRpt{
			GrpHdr: pacs002GrpHdr{
				MsgID:   report.ReportID(),
				CreDtTm: report.CreatedAt().Format(time.RFC3339),
			},
			TxInfAndSts: pacs002TxInfAndSts{
				OrgnlMsgID:      report.OriginalMessageID(),
				OrgnlMsgNmID:    pacs008MessageName,
				OrgnlInstrID:    report.OriginalInstructionID(),
				OrgnlEndToEndID: report.OriginalEndToEndID(),
				TxSts:           report.Status().String(),
			},
		},
	}

	if report.ReasonCode() != "" {
		doc.FIToFIPmtStsRpt.TxInfAndSts.StsRsnInf = &pacs002StsRsnInf{
			Rsn:      pacs002Rsn{Cd: report.ReasonCode()},
			AddtlInf: report.AdditionalInfo(),
		}
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pacs.002: %w", err)
	}

	a.recordGenerated()
	a.logger.Debug("generated status report",
		"report_id", report.ReportID(),
		"original_message_id", report.OriginalMessageID(),
		"status", report.Status().String(),
	)

	return string(data), nil
}

// GenerateAcknowledgement emits an ACCP status report for the instruction.
func (a *MessageAdapter) GenerateAcknowledgement(instr model.PaymentInstruction) (model.StatusReport, string, error) {
	report, err := model.NewStatusReport(instr, valueobject.StatusAccepted, "", "")
	if err != nil {
		return model.StatusReport{}, "", err
	}
	doc, err := a.GenerateStatusReport(report)
	if err != nil {
		return model.StatusReport{}, "", err
	}
	return report, doc, nil
}

// GenerateRejection emits an RJCT status report. The reason code is
// mandatory; additional free text is optional.
func (a *MessageAdapter) GenerateRejection(instr model.PaymentInstruction, reasonCode, additionalInfo string) (model.StatusReport, string, error) {
	report, err := model.NewStatusReport(instr, valueobject.StatusRejected, reasonCode, additionalInfo)
	if err != nil {
		return model.StatusReport{}, "", err
	}
	doc, err := a.GenerateStatusReport(report)
	if err != nil {
		return model.StatusReport{}, "", err
	}
	return report, doc, nil
}

// XML marshaling structs

type pacs002Document struct {
	XMLName         xml.Name               `xml:"Document"`
	Xmlns           string                 `xml:"xmlns,attr"`
	FIToFIPmtStsRpt pacs002FIToFIPmtStsRpt `xml:"FIToFIPmtStsRpt"`
}

type pacs002FIToFIPmtStsRpt struct {
	GrpHdr      pacs002GrpHdr      `xml:"GrpHdr"`
	TxInfAndSts pacs002TxInfAndSts `xml:"TxInfAndSts"`
}

type pacs002GrpHdr struct {
	MsgID   string `xml:"MsgId"`
	CreDtTm string `xml:"CreDtTm"`
}

type pacs002TxInfAndSts struct {
	OrgnlMsgID      string            `xml:"OrgnlMsgId"`
	OrgnlMsgNmID    string            `xml:"OrgnlMsgNmId"`
	OrgnlInstrID    string            `xml:"OrgnlInstrId"`
	OrgnlEndToEndID string            `xml:"OrgnlEndToEndId"`
	TxSts           string            `xml:"TxSts"`
	StsRsnInf       *pacs002StsRsnInf `xml:"StsRsnInf,omitempty"`
}

type pacs002StsRsnInf struct {
	Rsn      pacs002Rsn `xml:"Rsn"`
	AddtlInf string     `xml:"AddtlInf,omitempty"`
}

type pacs002Rsn struct {
	Cd string `xml:"Cd"`
}
