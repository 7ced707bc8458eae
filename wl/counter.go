package wl

import "strconv"

// counter is the label-minting state of one Refine call. It is a value:
// mint returns the advanced counter instead of mutating shared state, so the
// caller threads it from step to step.
type counter uint64

// mint issues the next LabelID (1, 2, 3, ...) and the advanced counter.
func (c counter) mint() (uint64, counter) {
	next := c + 1
	return uint64(next), next
}

// labelID renders a minted value as its LabelID token.
func labelID(v uint64) LabelID {
	return LabelID(strconv.FormatUint(v, 10))
}

// labelValue parses a LabelID back to its numeric value.
// Tokens not minted by this package sort after every minted one.
func labelValue(id LabelID) uint64 {
	v, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return ^uint64(0)
	}
	return v
}
