// Package fieldmeta attaches declarative validation metadata to model fields
// and applies it at construction time.
//
// A field declaration pairs a name with an ordered, opaque metadata sequence
// (Meta). The sequence itself interprets nothing: the validation runner picks
// out elements by capability — Validator elements check the field's value,
// Transformer elements normalize it first — and ignores everything else, so
// descriptions or arbitrary tags can ride along with the rules. A Schema
// collects the field declarations of one model type, built once and reused by
// that type's constructor.
//
// # Architecture
//
// Rule families live in their own files (`numeric_rules.go`,
// `string_rules.go`, `choice_rules.go`, etc.). Every exported rule
// constructor returns a small immutable value implementing Validator; there
// is no hidden global state, therefore the package is completely stateless,
// allocation-light, and goroutine-safe.
//
// Core building blocks:
//   - Meta        – ordered metadata sequence, nestable for reusable rule sets
//   - Field       – one declared field: name plus attached metadata
//   - Schema      – declaration-order field set for a model type, with the runner
//   - Validator   – capability a metadata element implements to check values
//   - Transformer – capability for normalize-before-validate elements
//   - Violation   – a single rejected field value; Violations aggregates them
//
// # Usage
//
//	var squareSchema = fieldmeta.New(
//	    fieldmeta.NewField("side", fieldmeta.Positive()),
//	)
//
//	type Square struct{ Side int }
//
//	func NewSquare(side int) (Square, error) {
//	    if err := squareSchema.Validate(fieldmeta.Values{"side": side}); err != nil {
//	        return Square{}, err
//	    }
//	    return Square{Side: side}, nil
//	}
//
// Validation walks fields in declaration order and each field's metadata in
// attachment order. The first failing validator settles a field; the
// remaining fields are still checked, and every per-field violation comes
// back in one Violations error.
//
// # Error Handling
//
// Violations implements the error interface and is extracted with
// ExtractViolations or errors.As, so callers can inspect per-field messages
// with Has, Get and Fields while treating the whole result as a single error
// return.
//
// # Examples
//
// See the companion *_test.go files for runnable examples covering each rule
// set and the schema runner.
package fieldmeta
