package errors

import "fmt"

// Kind identifies which of the soundness checker's error kinds an error
// belongs to (spec §7). Compare KindOf(err) against one of the Kind
// constants below.
type Kind int

const (
	// KindNone marks an error that doesn't belong to any of the kinds below.
	KindNone Kind = iota
	// KindVerificationFailed: cryptographic verification of a presentation
	// or credential failed.
	KindVerificationFailed
	// KindBadRuleIndex: a proof step references a non-existent rule.
	KindBadRuleIndex
	// KindBadRuleApplication: arity mismatch, or an unbound variable
	// survived substitution.
	KindBadRuleApplication
	// KindUnverifiedAssumption: the validator's assumed set contains a
	// triple absent from the fact set being checked against.
	KindUnverifiedAssumption
	// KindCannotProve: the prover's saturation did not reach the goal set.
	KindCannotProve
)

func (k Kind) String() string {
	switch k {
	case KindVerificationFailed:
		return "VerificationFailed"
	case KindBadRuleIndex:
		return "InvalidProof(BadRuleIndex)"
	case KindBadRuleApplication:
		return "InvalidProof(BadRuleApplication)"
	case KindUnverifiedAssumption:
		return "UnverifiedAssumption"
	case KindCannotProve:
		return "CannotProve"
	default:
		return "none"
	}
}

type kindedError struct {
	kind Kind
	err  error
}

func (e *kindedError) Error() string { return e.err.Error() }
func (e *kindedError) Unwrap() error { return e.err }
func (e *kindedError) Cause() error  { return e.err } // cockroachdb/errors cause protocol

func withKind(k Kind, err error) error {
	return &kindedError{kind: k, err: err}
}

// KindOf returns the Kind the error was tagged with by this package's
// constructors below, or KindNone if it wasn't one of ours.
func KindOf(err error) Kind {
	var ke *kindedError
	if As(err, &ke) {
		return ke.kind
	}
	return KindNone
}

// VerificationFailed wraps the suite-level verification error (spec §7).
func VerificationFailed(inner error) error {
	return withKind(KindVerificationFailed, Wrapf(inner, "verification failed"))
}

// BadRuleIndex reports a proof step referencing a rule index out of range.
func BadRuleIndex(stepIndex int, ruleIndex uint32, numRules int) error {
	return withKind(KindBadRuleIndex, Newf(
		"proof step %d: rule index %d out of range (have %d rules)",
		stepIndex, ruleIndex, numRules,
	))
}

// BadRuleApplication reports an arity mismatch or an atom left partially
// unbound after substitution.
func BadRuleApplication(stepIndex int, reason string) error {
	return withKind(KindBadRuleApplication, Newf(
		"proof step %d: bad rule application: %s", stepIndex, reason,
	))
}

// UnverifiedAssumption reports a triple the validator needed as a premise
// that the caller's fact set does not contain.
func UnverifiedAssumption(triple fmt.Stringer) error {
	return withKind(KindUnverifiedAssumption, Newf(
		"unverified assumption: %s", triple.String(),
	))
}

// CannotProve reports that saturation did not reach the requested goals.
func CannotProve(remaining int) error {
	return withKind(KindCannotProve, Newf(
		"cannot prove: %d goal triple(s) unreached at fixpoint", remaining,
	))
}
