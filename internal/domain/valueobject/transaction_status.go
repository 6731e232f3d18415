package valueobject

import (
	"fmt"
	"regexp"
)

// TransactionStatus is the ISO 20022 payment transaction status code carried
// in a pacs.002 status report.
type TransactionStatus struct {
	value string
}

var (
	StatusAccepted                    = TransactionStatus{"ACCP"}
	StatusAcceptedSettlementCompleted = TransactionStatus{"ACSC"}
	StatusAcceptedSettlementInProcess = TransactionStatus{"ACSP"}
	StatusAcceptedTechnical           = TransactionStatus{"ACTC"}
	StatusAcceptedWithChange          = TransactionStatus{"ACWC"}
	StatusPending                     = TransactionStatus{"PDNG"}
	StatusReceived                    = TransactionStatus{"RCVD"}
	StatusRejected                    = TransactionStatus{"RJCT"}
)

var validStatuses = map[string]TransactionStatus{
	"ACCP": StatusAccepted,
	"ACSC": StatusAcceptedSettlementCompleted,
	"ACSP": StatusAcceptedSettlementInProcess,
	"ACTC": StatusAcceptedTechnical,
	"ACWC": StatusAcceptedWithChange,
	"PDNG": StatusPending,
	"RCVD": StatusReceived,
	"RJCT": StatusRejected,
}

// NewTransactionStatus validates and creates a TransactionStatus from a string.
func NewTransactionStatus(s string) (TransactionStatus, error) {
	if status, ok := validStatuses[s]; ok {
		return status, nil
	}
	return TransactionStatus{}, fmt.Errorf("invalid transaction status: %q", s)
}

// String returns the four-letter status code.
func (s TransactionStatus) String() string {
	return s.value
}

// IsAccepted returns true for the ACCP/ACSC/ACSP/ACTC/ACWC variants.
func (s TransactionStatus) IsAccepted() bool {
	switch s {
	case StatusAccepted, StatusAcceptedSettlementCompleted, StatusAcceptedSettlementInProcess,
		StatusAcceptedTechnical, StatusAcceptedWithChange:
		return true
	}
	return false
}

// IsRejected returns true for RJCT.
func (s TransactionStatus) IsRejected() bool {
	return s == StatusRejected
}

// IsZero returns true if the status is uninitialized.
func (s TransactionStatus) IsZero() bool {
	return s.value == ""
}

var reasonCodeRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,3}$`)

// ValidReasonCode reports whether code has the shape of an ISO 20022 status
// reason code (e.g. "AM04", "AC01", "FF01").
func ValidReasonCode(code string) bool {
	return reasonCodeRe.MatchString(code)
}
