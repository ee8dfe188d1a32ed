package jtms

import (
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"go.uber.org/zap"
)

// wave tracks one propagation cascade. active holds the beliefs currently on
// the recursion stack; a belief is never re-entered while it is active, which
// only happens when the dependency graph has a cycle.
type wave struct {
	active     map[beliefRef]bool
	recomputed int
	cut        int
}

func (n *Network) runWave(fn func(w *wave)) {
	w := &wave{active: make(map[beliefRef]bool)}
	fn(w)

	if w.cut > 0 {
		n.logger.Debug("propagation re-entry cut", zap.Int("cut", w.cut))
	}
	if n.observer != nil {
		n.observer.WaveCompleted(w.recomputed)
	}
}

func (n *Network) recompute(w *wave, ref beliefRef) {
	if w.active[ref] {
		w.cut++
		return
	}
	w.active[ref] = true
	defer delete(w.active, ref)
	w.recomputed++

	b := &n.beliefs[ref]
	b.forced = false
	b.validity = domain.ValidityUnknown
	if !b.nonMonotonic {
		for _, jid := range b.supporting {
			if n.satisfied(jid) {
				b.validity = domain.ValidityTrue
				break
			}
		}
	}

	n.propagate(w, ref)
}

func (n *Network) propagate(w *wave, ref beliefRef) {
	for _, jid := range n.beliefs[ref].dependents {
		n.recompute(w, n.justifications[jid].conclusion)
	}
}

func (n *Network) satisfied(jid domain.JustificationID) bool {
	j := &n.justifications[jid]
	for _, ref := range j.positive {
		if !n.beliefs[ref].validity.IsTrue() {
			return false
		}
	}
	for _, ref := range j.negative {
		if n.beliefs[ref].validity.IsTrue() {
			return false
		}
	}
	return true
}
