package jtms

import (
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Rescan builds the premise → conclusion graph of every attached
// justification and flags each member of a strongly connected component with
// more than one belief as non-monotonic. Flags are never cleared, and a
// belief that only justifies itself is not flagged. Newly flagged beliefs are
// recomputed. Rescan returns their identifiers in declaration order.
func (n *Network) Rescan() []string {
	g := simple.NewDirectedGraph()
	for ref := range n.beliefs {
		if !n.beliefs[ref].removed {
			g.AddNode(simple.Node(ref))
		}
	}
	for _, j := range n.justifications {
		if !j.attached || n.beliefs[j.conclusion].removed {
			continue
		}
		for _, p := range j.premises() {
			// Self edges never change component membership.
			if p == j.conclusion || n.beliefs[p].removed {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(p), simple.Node(j.conclusion)))
		}
	}

	var flagged []beliefRef
	for _, component := range topo.TarjanSCC(g) {
		if len(component) < 2 {
			continue
		}
		for _, node := range component {
			ref := beliefRef(node.ID())
			if !n.beliefs[ref].nonMonotonic {
				n.beliefs[ref].nonMonotonic = true
				flagged = append(flagged, ref)
			}
		}
	}
	if len(flagged) == 0 {
		return nil
	}
	slices.Sort(flagged)

	ids := make([]string, len(flagged))
	for i, ref := range flagged {
		ids[i] = n.beliefs[ref].id
	}
	n.logger.Info("beliefs flagged non-monotonic", zap.Strings("belief_ids", ids))
	if n.observer != nil {
		n.observer.BeliefsFlagged(ids)
	}

	for _, ref := range flagged {
		n.runWave(func(w *wave) { n.recompute(w, ref) })
	}
	return ids
}
