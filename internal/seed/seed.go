// Package seed reads YAML documents describing an initial belief network.
//
//	strict: false
//	beliefs: [bird, penguin]
//	justifications:
//	  - in: [bird]
//	    out: [penguin]
//	    conclusion: flies
//	forced:
//	  - belief: bird
//	    validity: "true"
//
// Beliefs are declared first, then justifications in document order, then
// the forced validities.
package seed

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrEmptyConclusion = errors.New("justification conclusion is required")

type Document struct {
	Strict         bool            `yaml:"strict"`
	Beliefs        []string        `yaml:"beliefs"`
	Justifications []Justification `yaml:"justifications"`
	Forced         []Forced        `yaml:"forced"`
}

type Justification struct {
	In         []string `yaml:"in"`
	Out        []string `yaml:"out"`
	Conclusion string   `yaml:"conclusion"`
}

type Forced struct {
	Belief   string          `yaml:"belief"`
	Validity domain.Validity `yaml:"validity"`
}

// Target is the subset of a belief network a document is applied to.
type Target interface {
	DeclareBelief(id string) bool
	DeclareJustification(positive, negative []string, conclusion string, strict bool) (domain.JustificationID, error)
	ForceBeliefValidity(id string, v domain.Validity, strict bool) error
}

func Parse(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.Wrap(err, "decode seed")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open seed %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks the document shape without touching any network.
func (d *Document) Validate() error {
	for i, j := range d.Justifications {
		if j.Conclusion == "" {
			return errors.Wrapf(ErrEmptyConclusion, "justification %d", i)
		}
	}
	for _, f := range d.Forced {
		if !domain.ValidValidity(string(f.Validity)) {
			return errors.Wrapf(domain.ErrInvalidValidity, "forced %s: %q", f.Belief, f.Validity)
		}
	}
	return nil
}

// Apply declares the document against t and stops at the first error.
func (d *Document) Apply(t Target) error {
	for _, id := range d.Beliefs {
		t.DeclareBelief(id)
	}
	for i, j := range d.Justifications {
		if _, err := t.DeclareJustification(j.In, j.Out, j.Conclusion, d.Strict); err != nil {
			return errors.Wrapf(err, "seed justification %d", i)
		}
	}
	for _, f := range d.Forced {
		if err := t.ForceBeliefValidity(f.Belief, f.Validity, d.Strict); err != nil {
			return errors.Wrapf(err, "seed forced %s", f.Belief)
		}
	}
	return nil
}
