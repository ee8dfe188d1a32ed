package jtms

import (
	"github.com/cockroachdb/errors"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
)

// Validity returns the current validity of the belief.
func (n *Network) Validity(id string) (domain.Validity, error) {
	ref, err := n.lookup(id)
	if err != nil {
		return "", err
	}
	return n.beliefs[ref].validity, nil
}

func (n *Network) Belief(id string) (domain.BeliefView, error) {
	ref, err := n.lookup(id)
	if err != nil {
		return domain.BeliefView{}, err
	}
	return n.beliefView(ref), nil
}

func (n *Network) beliefView(ref beliefRef) domain.BeliefView {
	b := &n.beliefs[ref]
	return domain.BeliefView{ID: b.id, Validity: b.validity, NonMonotonic: b.nonMonotonic}
}

// Beliefs lists belief identifiers in declaration order.
func (n *Network) Beliefs() []string {
	ids := make([]string, 0, len(n.index))
	for ref := range n.beliefs {
		if !n.beliefs[ref].removed {
			ids = append(ids, n.beliefs[ref].id)
		}
	}
	return ids
}

func (n *Network) BeliefViews() []domain.BeliefView {
	views := make([]domain.BeliefView, 0, len(n.index))
	for ref := range n.beliefs {
		if !n.beliefs[ref].removed {
			views = append(views, n.beliefView(beliefRef(ref)))
		}
	}
	return views
}

// Len returns the number of live beliefs.
func (n *Network) Len() int {
	return len(n.index)
}

// JustificationCount returns the number of justifications still attached to
// a live conclusion.
func (n *Network) JustificationCount() int {
	count := 0
	for _, j := range n.justifications {
		if j.attached && !n.beliefs[j.conclusion].removed {
			count++
		}
	}
	return count
}

// Justifications returns the supporting justifications of the belief in
// insertion order.
func (n *Network) Justifications(id string) ([]domain.JustificationView, error) {
	ref, err := n.lookup(id)
	if err != nil {
		return nil, err
	}
	supporting := n.beliefs[ref].supporting
	views := make([]domain.JustificationView, len(supporting))
	for i, jid := range supporting {
		views[i] = n.justificationView(jid)
	}
	return views, nil
}

func (n *Network) Justification(jid domain.JustificationID) (domain.JustificationView, error) {
	if int(jid) < 0 || int(jid) >= len(n.justifications) || !n.justifications[jid].attached {
		return domain.JustificationView{}, errors.Wrapf(domain.ErrUnknownJustification, "justification %d", jid)
	}
	return n.justificationView(jid), nil
}

func (n *Network) justificationView(jid domain.JustificationID) domain.JustificationView {
	j := &n.justifications[jid]
	return domain.JustificationView{
		ID:         jid,
		Positive:   n.premiseViews(j.positive),
		Negative:   n.premiseViews(j.negative),
		Conclusion: n.beliefs[j.conclusion].id,
		Satisfied:  n.satisfied(jid),
	}
}

func (n *Network) premiseViews(refs []beliefRef) []domain.PremiseView {
	views := make([]domain.PremiseView, len(refs))
	for i, ref := range refs {
		views[i] = domain.PremiseView{BeliefID: n.beliefs[ref].id, Validity: n.beliefs[ref].validity}
	}
	return views
}

// Snapshot returns every live belief and every attached justification.
func (n *Network) Snapshot() domain.NetworkSnapshot {
	snap := domain.NetworkSnapshot{
		Beliefs:        n.BeliefViews(),
		Justifications: make([]domain.JustificationView, 0, len(n.justifications)),
	}
	for i, j := range n.justifications {
		if j.attached && !n.beliefs[j.conclusion].removed {
			snap.Justifications = append(snap.Justifications, n.justificationView(domain.JustificationID(i)))
		}
	}
	return snap
}

// Explain reports why the belief holds its current validity.
func (n *Network) Explain(id string) (domain.Explanation, error) {
	ref, err := n.lookup(id)
	if err != nil {
		return domain.Explanation{}, err
	}
	b := &n.beliefs[ref]
	exp := domain.Explanation{BeliefID: b.id, Validity: b.validity}

	switch {
	case b.forced:
		exp.Reason = domain.ReasonForced
	case b.nonMonotonic:
		exp.Reason = domain.ReasonNonMonotonic
	default:
		exp.Reason = domain.ReasonUnsupported
		if !b.validity.IsTrue() {
			break
		}
		for _, jid := range b.supporting {
			if n.satisfied(jid) {
				view := n.justificationView(jid)
				exp.Reason = domain.ReasonJustified
				exp.JustifiedBy = &view
				break
			}
		}
	}
	return exp, nil
}
