package ucum

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorKind is the closed set of diagnostic error kinds from §7.
type ErrorKind string

const (
	ErrSyntax                ErrorKind = "syntax"
	ErrUnexpectedToken       ErrorKind = "unexpected_token"
	ErrUnexpectedEOF         ErrorKind = "unexpected_eof"
	ErrInvalidNumber         ErrorKind = "invalid_number"
	ErrUnknownUnit           ErrorKind = "unknown_unit"
	ErrUnknownPrefix         ErrorKind = "unknown_prefix"
	ErrPrefixNotAllowed      ErrorKind = "prefix_not_allowed"
	ErrSpecialInComposition  ErrorKind = "special_in_composition"
	ErrSpecialExponent       ErrorKind = "special_exponent"
	ErrIncompatibleDimension ErrorKind = "incompatible_dimensions"
	ErrArbitraryMismatch     ErrorKind = "arbitrary_unit_mismatch"
	ErrNumericOverflow       ErrorKind = "numeric_overflow"
)

// WarningKind is the closed set of diagnostic warning kinds from §7.
type WarningKind string

const (
	WarnDeprecatedSyntax WarningKind = "deprecated_syntax"
	WarnAmbiguous        WarningKind = "ambiguous"
)

// Diagnostic is a structured parse/semantic error, per §4.3. It implements
// error and supports errors.Is against the sentinel errors below via
// Unwrap, mirroring gofhir's common.PathError wrapping convention.
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Span    Span
	Token   *Token
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at %d: %s", d.Kind, d.Span.Offset, d.Message)
}

func (d *Diagnostic) Unwrap() error {
	return sentinelFor(d.Kind)
}

// Warning is a structured, non-fatal diagnostic per §4.3/§7.
type Warning struct {
	Kind       WarningKind
	Message    string
	Span       Span
	Suggestion string
}

func newDiagnostic(kind ErrorKind, span Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

// Sentinel errors, one per ErrorKind, so callers can use errors.Is without
// inspecting Diagnostic.Kind directly.
var (
	ErrSentinelSyntax                = errors.New(string(ErrSyntax))
	ErrSentinelUnexpectedToken       = errors.New(string(ErrUnexpectedToken))
	ErrSentinelUnexpectedEOF         = errors.New(string(ErrUnexpectedEOF))
	ErrSentinelInvalidNumber         = errors.New(string(ErrInvalidNumber))
	ErrSentinelUnknownUnit           = errors.New(string(ErrUnknownUnit))
	ErrSentinelUnknownPrefix         = errors.New(string(ErrUnknownPrefix))
	ErrSentinelPrefixNotAllowed      = errors.New(string(ErrPrefixNotAllowed))
	ErrSentinelSpecialInComposition  = errors.New(string(ErrSpecialInComposition))
	ErrSentinelSpecialExponent       = errors.New(string(ErrSpecialExponent))
	ErrSentinelIncompatibleDimension = errors.New(string(ErrIncompatibleDimension))
	ErrSentinelArbitraryMismatch     = errors.New(string(ErrArbitraryMismatch))
	ErrSentinelNumericOverflow       = errors.New(string(ErrNumericOverflow))
)

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case ErrSyntax:
		return ErrSentinelSyntax
	case ErrUnexpectedToken:
		return ErrSentinelUnexpectedToken
	case ErrUnexpectedEOF:
		return ErrSentinelUnexpectedEOF
	case ErrInvalidNumber:
		return ErrSentinelInvalidNumber
	case ErrUnknownUnit:
		return ErrSentinelUnknownUnit
	case ErrUnknownPrefix:
		return ErrSentinelUnknownPrefix
	case ErrPrefixNotAllowed:
		return ErrSentinelPrefixNotAllowed
	case ErrSpecialInComposition:
		return ErrSentinelSpecialInComposition
	case ErrSpecialExponent:
		return ErrSentinelSpecialExponent
	case ErrIncompatibleDimension:
		return ErrSentinelIncompatibleDimension
	case ErrArbitraryMismatch:
		return ErrSentinelArbitraryMismatch
	case ErrNumericOverflow:
		return ErrSentinelNumericOverflow
	default:
		return errors.New(string(kind))
	}
}

// diagnosticList joins multiple diagnostics into a single error, ordered by
// starting byte position per §5 "Ordering".
type diagnosticList []*Diagnostic

func (l diagnosticList) Error() string {
	if len(l) == 0 {
		return "no diagnostics"
	}
	msg := l[0].Error()
	for _, d := range l[1:] {
		msg += "; " + d.Error()
	}
	return msg
}

func (l diagnosticList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, d := range l {
		errs[i] = d
	}
	return errs
}

func firstError(diags []*Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	list := make(diagnosticList, len(diags))
	copy(list, diags)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Span.Offset < list[j].Span.Offset })
	return list
}
