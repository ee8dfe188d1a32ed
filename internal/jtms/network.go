// Package jtms implements a justification-based truth-maintenance network.
//
// Beliefs and justifications live in two arenas owned by a Network and refer
// to each other by index. A belief is True when at least one of its
// supporting justifications fires (every positive premise True, no negative
// premise True) and the belief has not been caught in a multi-belief
// justification cycle. Every mutation recomputes the affected conclusion and
// cascades to dependents before returning.
//
// A Network is not safe for concurrent use.
package jtms

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"go.uber.org/zap"
)

type beliefRef int

type belief struct {
	id           string
	validity     domain.Validity
	nonMonotonic bool
	// forced is set by an explicit override and cleared by the next recompute.
	forced     bool
	removed    bool
	supporting []domain.JustificationID
	dependents []domain.JustificationID
}

type justification struct {
	positive   []beliefRef
	negative   []beliefRef
	conclusion beliefRef
	// attached is false once the rule was detached from its conclusion.
	attached bool
}

// Observer receives notifications about propagation work.
type Observer interface {
	WaveCompleted(recomputed int)
	BeliefsFlagged(ids []string)
}

type Network struct {
	beliefs        []belief
	index          map[string]beliefRef
	justifications []justification
	logger         *zap.Logger
	observer       Observer
}

func New(logger *zap.Logger) *Network {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Network{
		index:  make(map[string]beliefRef),
		logger: logger,
	}
}

// SetObserver installs o; a nil observer disables notifications.
func (n *Network) SetObserver(o Observer) {
	n.observer = o
}

// DeclareBelief creates the belief if it does not exist yet and reports
// whether it was created.
func (n *Network) DeclareBelief(id string) bool {
	if _, ok := n.index[id]; ok {
		return false
	}
	n.declare(id)
	return true
}

func (n *Network) declare(id string) beliefRef {
	ref := beliefRef(len(n.beliefs))
	n.beliefs = append(n.beliefs, belief{id: id, validity: domain.ValidityUnknown})
	n.index[id] = ref
	return ref
}

func (n *Network) lookup(id string) (beliefRef, error) {
	ref, ok := n.index[id]
	if !ok {
		return 0, domain.NewUnknownBeliefError(id)
	}
	return ref, nil
}

// resolve maps identifiers to beliefs, creating missing ones unless strict.
// In strict mode nothing is created when any identifier is missing.
func (n *Network) resolve(ids []string, strict bool) ([]beliefRef, error) {
	if strict {
		var missing []string
		for _, id := range ids {
			if _, ok := n.index[id]; !ok && !slices.Contains(missing, id) {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			return nil, domain.NewUnknownBeliefError(missing...)
		}
	}

	refs := make([]beliefRef, len(ids))
	for i, id := range ids {
		ref, ok := n.index[id]
		if !ok {
			ref = n.declare(id)
		}
		refs[i] = ref
	}
	return refs, nil
}

// DeclareJustification adds the rule "positive... and not negative... implies
// conclusion", recomputes the conclusion and rescans the network for
// justification cycles. In strict mode every identifier must already exist;
// on failure the network is left untouched.
func (n *Network) DeclareJustification(positive, negative []string, conclusion string, strict bool) (domain.JustificationID, error) {
	ids := make([]string, 0, len(positive)+len(negative)+1)
	ids = append(ids, positive...)
	ids = append(ids, negative...)
	ids = append(ids, conclusion)

	refs, err := n.resolve(ids, strict)
	if err != nil {
		return 0, errors.Wrap(err, "declare justification")
	}

	j := justification{
		positive:   refs[:len(positive):len(positive)],
		negative:   refs[len(positive) : len(positive)+len(negative) : len(positive)+len(negative)],
		conclusion: refs[len(refs)-1],
		attached:   true,
	}
	jid := domain.JustificationID(len(n.justifications))
	n.justifications = append(n.justifications, j)

	n.beliefs[j.conclusion].supporting = append(n.beliefs[j.conclusion].supporting, jid)
	for _, ref := range j.premises() {
		n.beliefs[ref].dependents = append(n.beliefs[ref].dependents, jid)
	}

	n.logger.Debug("justification declared",
		zap.Int("justification_id", int(jid)),
		zap.Strings("in", positive),
		zap.Strings("out", negative),
		zap.String("conclusion", conclusion),
	)

	n.runWave(func(w *wave) { n.recompute(w, j.conclusion) })
	n.Rescan()
	return jid, nil
}

// premises returns the distinct positive and negative premises in order.
func (j *justification) premises() []beliefRef {
	out := make([]beliefRef, 0, len(j.positive)+len(j.negative))
	for _, ref := range j.positive {
		if !slices.Contains(out, ref) {
			out = append(out, ref)
		}
	}
	for _, ref := range j.negative {
		if !slices.Contains(out, ref) {
			out = append(out, ref)
		}
	}
	return out
}

// RemoveBelief detaches every justification that uses the belief as a
// premise from its conclusion, recomputes those conclusions and deletes the
// belief. Justifications concluding the removed belief stay where they are.
func (n *Network) RemoveBelief(id string) error {
	ref, err := n.lookup(id)
	if err != nil {
		return errors.Wrap(err, "remove belief")
	}

	for _, jid := range n.beliefs[ref].dependents {
		if !n.justifications[jid].attached {
			continue
		}
		conclusion := n.detach(jid)
		n.runWave(func(w *wave) { n.recompute(w, conclusion) })
	}

	n.beliefs[ref].removed = true
	delete(n.index, id)
	n.logger.Debug("belief removed", zap.String("belief_id", id))
	return nil
}

// RemoveJustification detaches the justification from its conclusion and
// recomputes the conclusion.
func (n *Network) RemoveJustification(jid domain.JustificationID) error {
	if int(jid) < 0 || int(jid) >= len(n.justifications) || !n.justifications[jid].attached {
		return errors.Wrapf(domain.ErrUnknownJustification, "remove justification %d", jid)
	}
	conclusion := n.detach(jid)
	n.runWave(func(w *wave) { n.recompute(w, conclusion) })
	n.logger.Debug("justification removed", zap.Int("justification_id", int(jid)))
	return nil
}

func (n *Network) detach(jid domain.JustificationID) beliefRef {
	j := &n.justifications[jid]
	j.attached = false
	c := &n.beliefs[j.conclusion]
	c.supporting = slices.DeleteFunc(c.supporting, func(s domain.JustificationID) bool { return s == jid })
	return j.conclusion
}

// ForceBeliefValidity overrides the validity of a belief and propagates the
// change. In lenient mode a missing belief is created first.
func (n *Network) ForceBeliefValidity(id string, v domain.Validity, strict bool) error {
	if !domain.ValidValidity(string(v)) {
		return errors.Wrapf(domain.ErrInvalidValidity, "force %q", v)
	}
	ref, ok := n.index[id]
	if !ok {
		if strict {
			return errors.Wrap(domain.NewUnknownBeliefError(id), "force validity")
		}
		ref = n.declare(id)
	}

	n.beliefs[ref].validity = v
	n.beliefs[ref].forced = true
	n.logger.Debug("belief validity forced", zap.String("belief_id", id), zap.String("validity", string(v)))

	n.runWave(func(w *wave) {
		// The forced belief stays on the stack so a cycle through it cannot
		// overwrite the override within this wave.
		w.active[ref] = true
		n.propagate(w, ref)
	})
	return nil
}

// RecomputeAll recomputes every belief in declaration order.
func (n *Network) RecomputeAll() {
	for ref := range n.beliefs {
		if n.beliefs[ref].removed {
			continue
		}
		n.runWave(func(w *wave) { n.recompute(w, beliefRef(ref)) })
	}
}
