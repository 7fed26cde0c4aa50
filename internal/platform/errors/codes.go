// Package errors provides structured, coded errors for attribute generation.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Stat errors
	CodeStatKindMismatch Code = "STAT_KIND_MISMATCH"
	CodeStatUnknownKind  Code = "STAT_UNKNOWN_KIND"

	// Gender errors
	CodeGenderUnknownToken Code = "GENDER_UNKNOWN_TOKEN"
	CodeGenderBiasInvalid  Code = "GENDER_BIAS_INVALID"

	// Encoding errors
	CodeOrderingInvalid Code = "ORDERING_INVALID"
	CodeVariantUnknown  Code = "VARIANT_UNKNOWN"

	// Table errors
	CodeTableIncomplete Code = "TABLE_INCOMPLETE"

	// Template errors
	CodeTemplateInvalid Code = "TEMPLATE_INVALID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Fatal reports whether the code marks a contract violation rather than a
// condition callers are expected to handle.
func (c Code) Fatal() bool {
	switch c {
	case CodeStatKindMismatch, CodeGenderUnknownToken, CodeTableIncomplete:
		return true
	default:
		return false
	}
}
