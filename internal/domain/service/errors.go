package service

import "fmt"

// The four failure kinds below are distinct and non-overlapping. None of
// them is ever recovered or retried internally; a failure is permanent for
// that input and is surfaced to the immediate caller with full context.

// MalformedXMLError indicates the input is not well-formed XML, or is empty.
// The message must be bounced without attempting any financial action.
type MalformedXMLError struct {
	Detail string
	Err    error
}

func (e *MalformedXMLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed XML: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("malformed XML: %s", e.Detail)
}

func (e *MalformedXMLError) Unwrap() error { return e.Err }

// SchemaValidationError indicates well-formed XML that is semantically
// incomplete: a required element is missing, or a numeric value cannot be
// parsed. Field names which required structure was violated.
type SchemaValidationError struct {
	Field  string
	Detail string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("schema validation failed on %s: %s", e.Field, e.Detail)
}

// CurrencyValidationError indicates a structurally valid amount whose
// currency code is outside the allow-list. Kept distinct from schema
// validation so a future version can queue these for manual allow-list
// review instead of hard-rejecting.
type CurrencyValidationError struct {
	Code string
}

func (e *CurrencyValidationError) Error() string {
	return fmt.Sprintf("currency %q is not in the supported currency set", e.Code)
}

// LosslessTranslationError is raised only by the internal consistency
// check, never by normal parse or generate. It signals a defect in the
// adapter itself, not in the input.
type LosslessTranslationError struct {
	Field    string
	Original string
	Reparsed string
}

func (e *LosslessTranslationError) Error() string {
	return fmt.Sprintf("lossless translation violated on %s: original %q, reparsed %q", e.Field, e.Original, e.Reparsed)
}
