package domain

// JustificationID is the stable handle of a justification inside one network.
// Handles are assigned in creation order and never reused.
type JustificationID int

type PremiseView struct {
	BeliefID string   `json:"belief_id"`
	Validity Validity `json:"validity"`
}

// JustificationView reports a rule together with the current validity of
// each premise and whether the rule presently fires.
type JustificationView struct {
	ID         JustificationID `json:"id"`
	Positive   []PremiseView   `json:"in"`
	Negative   []PremiseView   `json:"out"`
	Conclusion string          `json:"conclusion"`
	Satisfied  bool            `json:"satisfied"`
}

// NetworkSnapshot is the whole graph as a renderer would draw it.
type NetworkSnapshot struct {
	Beliefs        []BeliefView        `json:"beliefs"`
	Justifications []JustificationView `json:"justifications"`
}
