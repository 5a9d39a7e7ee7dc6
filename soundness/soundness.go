package soundness

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/logger"
	"github.com/dock-labs/rdf2020soundness/prove"
	"github.com/dock-labs/rdf2020soundness/reify"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/term"
	"github.com/dock-labs/rdf2020soundness/validate"
)

// ReplayRecorder persists the outcome of a single CheckSoundness replay:
// how many steps the proof took and how many triples it assumed versus
// implied. store.AuditLog is the production implementation, backed by
// SQLite's proof_replays table; this package only depends on the
// interface so the core stays free of a database dependency.
type ReplayRecorder interface {
	RecordReplay(stepCount, assumedCount, impliedCount int, outcome string) error
}

// Driver runs the soundness checks, holding the oracles and the logger
// used to report progress. Both verifier and expander must be supplied;
// there is no default implementation since signature verification and
// JSON-LD expansion are explicitly out of the core's scope.
type Driver struct {
	Verifier Verifier
	Expander Expander
	log      *zap.SugaredLogger

	// OnProofStep, if set, is forwarded to the internal Prover's OnStep
	// hook during ProveComposite, letting a caller stream saturation
	// progress rather than wait for the whole proof to finish.
	OnProofStep func(prove.ProofStep)

	// Recorder, if set, is told the outcome of every CheckSoundness
	// replay that validates: "accepted" or
	// "rejected:unverified_assumption". Calls that fail earlier
	// (verification, expansion, decoding, an invalid proof step) are not
	// recorded. A nil Recorder disables persistence.
	Recorder ReplayRecorder

	// ClaimsProperty overrides the explicit-ethos reification predicate
	// C2 reifies credential claims under (spec.md's claimsV1 Open
	// Question). Empty uses term.ClaimsV1.
	ClaimsProperty string
}

// New builds a Driver. A nil log disables progress logging.
func New(verifier Verifier, expander Expander, log *zap.SugaredLogger) *Driver {
	return &Driver{Verifier: verifier, Expander: expander, log: log}
}

// CheckSoundness implements check_soundness from spec.md §4.6: verify the
// presentation, translate it to a claim graph, validate the attached proof
// against rules, and return the union of translated facts and validated
// implications. It fails with VerificationFailed, BadRuleIndex,
// BadRuleApplication or UnverifiedAssumption, or with a wrapped error
// when expansion, translation or decoding of the attached proof fails.
func (d *Driver) CheckSoundness(p Presentation, rules []rule.Rule) (term.ClaimGraph, error) {
	vr, err := d.Verifier.Verify(p)
	if err != nil {
		return term.ClaimGraph{}, errors.VerificationFailed(err)
	}
	if !vr.Verified {
		return term.ClaimGraph{}, errors.VerificationFailed(errors.New("presentation failed cryptographic verification"))
	}

	expanded, err := d.Expander.Expand(p)
	if err != nil {
		return term.ClaimGraph{}, errors.Wrap(err, "expand presentation")
	}

	facts, err := reify.Translate(expanded.Presentation, d.ClaimsProperty)
	if err != nil {
		return term.ClaimGraph{}, errors.Wrap(err, "translate presentation")
	}

	proof, err := decodeProof(expanded.Proof)
	if err != nil {
		return term.ClaimGraph{}, errors.Wrap(err, "decode attached proof")
	}

	result, err := validate.Validate(rules, proof)
	if err != nil {
		return term.ClaimGraph{}, err
	}

	for _, a := range result.Assumed.Triples() {
		if !facts.Contains(a) {
			d.recordReplay(len(proof), result.Assumed.Len(), result.Implied.Len(), "rejected:unverified_assumption")
			return term.ClaimGraph{}, errors.UnverifiedAssumption(a)
		}
	}

	accepted := facts.Union(result.Implied)
	d.logf(facts.Len(), result.Implied.Len())
	d.recordReplay(len(proof), result.Assumed.Len(), result.Implied.Len(), "accepted")
	return accepted, nil
}

// ProveComposite is the holder-side mirror of CheckSoundness: translate
// the presentation to a fact set, run the prover toward goals, and return
// the resulting witness in the same wire shape CheckSoundness's step 4
// consumes.
func (d *Driver) ProveComposite(p Presentation, goals term.ClaimGraph, rules []rule.Rule) (prove.Proof, error) {
	expanded, err := d.Expander.Expand(p)
	if err != nil {
		return nil, errors.Wrap(err, "expand presentation")
	}

	facts, err := reify.Translate(expanded.Presentation, d.ClaimsProperty)
	if err != nil {
		return nil, errors.Wrap(err, "translate presentation")
	}

	prover := prove.New(d.log)
	prover.OnStep = d.OnProofStep
	return prover.Prove(facts, goals, rules)
}

func (d *Driver) logf(factCount, impliedCount int) {
	if d.log == nil {
		return
	}
	d.log.Infow("soundness check accepted",
		logger.FieldTripleCount, factCount,
		logger.FieldImpliedCount, impliedCount,
	)
}

// recordReplay tells d.Recorder, if set, about this CheckSoundness
// call's outcome. A recorder failure is logged, not returned: an audit
// write failing must never flip an otherwise-sound check into an error.
func (d *Driver) recordReplay(stepCount, assumedCount, impliedCount int, outcome string) {
	if d.Recorder == nil {
		return
	}
	if err := d.Recorder.RecordReplay(stepCount, assumedCount, impliedCount, outcome); err != nil {
		if d.log != nil {
			d.log.Warnw("failed to record proof replay", logger.FieldError, err.Error())
		}
	}
}

// decodeProof parses the raw logicV1 property bytes into a Proof. An
// absent or empty property decodes to an empty proof, per spec.md §4.6
// step 4.
func decodeProof(raw []byte) (prove.Proof, error) {
	if len(raw) == 0 {
		return prove.Proof{}, nil
	}
	var p prove.Proof
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}
