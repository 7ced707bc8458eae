// Package wl provides the step model, options and error definitions
// for Weisfeiler-Lehman refinement.
package wl

import "errors"

// Sentinel errors for Refine.
var (
	// ErrInvalidGraphReference is returned when an input graph is nil,
	// carries a malformed node, or has an edge endpoint that is not a node
	// of that graph.
	ErrInvalidGraphReference = errors.New("wl: invalid graph reference")

	// ErrInvalidHorizon is returned when maxK is negative.
	ErrInvalidHorizon = errors.New("wl: invalid horizon")
)

// LabelID is an opaque label token: a decimal string minted once per Refine call.
type LabelID string

// Mapping records one signature discovered at a step and the label minted for it.
type Mapping struct {
	Signature string  `json:"signature" yaml:"signature"`
	Label     LabelID `json:"label" yaml:"label"`
}

// Step is the immutable record of one refinement iteration.
//
//   - K: iteration number, 0-based and contiguous.
//   - LabelsA / LabelsB: node ID → label, one entry per node.
//   - LabelCountsA / LabelCountsB: label → occurrences in that graph.
//   - UniqueLabels: union of both histograms' keys, sorted by numeric value.
//   - Mappings: dictionary minted at this step, in minting order.
//   - IsIsomorphicCandidate: histograms are equal (necessary, not sufficient).
type Step struct {
	K                     int                `json:"k" yaml:"k"`
	LabelsA               map[string]LabelID `json:"labelsA" yaml:"labels_a"`
	LabelsB               map[string]LabelID `json:"labelsB" yaml:"labels_b"`
	LabelCountsA          map[LabelID]int    `json:"labelCountsA" yaml:"label_counts_a"`
	LabelCountsB          map[LabelID]int    `json:"labelCountsB" yaml:"label_counts_b"`
	UniqueLabels          []LabelID          `json:"uniqueLabels" yaml:"unique_labels"`
	Mappings              []Mapping          `json:"mappings" yaml:"mappings"`
	IsIsomorphicCandidate bool               `json:"isIsomorphicCandidate" yaml:"is_isomorphic_candidate"`
}

// Option configures Refine via functional arguments.
type Option func(*Options)

// Options holds observation hooks for Refine. Hooks see finished data and
// cannot influence any labeling decision.
type Options struct {
	// OnStep is called once per step, after the step is complete.
	OnStep func(step Step)

	// OnSignature is called for every mapping minted, in minting order.
	OnSignature func(k int, signature string, label LabelID)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnStep:      func(Step) {},
		OnSignature: func(int, string, LabelID) {},
	}
}

// WithOnStep registers a callback run after each step is built.
func WithOnStep(fn func(step Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnSignature registers a callback run for each minted mapping.
func WithOnSignature(fn func(k int, signature string, label LabelID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSignature = fn
		}
	}
}
