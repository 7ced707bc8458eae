package wl

import (
	"slices"
	"strconv"
	"strings"
)

// initialSignaturePrefix is the visible signature of a step-0 mapping.
const initialSignaturePrefix = "Initial: "

// initialSignature returns the dictionary entry for raw initial label v.
func initialSignature(v int) string {
	return initialSignaturePrefix + strconv.Itoa(v)
}

// signature encodes a node's previous label and the multiset of its
// neighbors' previous labels as "(self,[n1,n2,...])".
//
// Neighbor labels are sorted by numeric value. scratch is reused between
// calls to avoid an allocation per node; its contents are overwritten.
func signature(self uint64, neighbors []int, prev []uint64, scratch []uint64) (string, []uint64) {
	scratch = scratch[:0]
	for _, nb := range neighbors {
		scratch = append(scratch, prev[nb])
	}
	slices.Sort(scratch)

	var sb strings.Builder
	sb.Grow(4 + 21*(len(scratch)+1))
	sb.WriteByte('(')
	sb.WriteString(strconv.FormatUint(self, 10))
	sb.WriteString(",[")
	for i, v := range scratch {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	sb.WriteString("])")

	return sb.String(), scratch
}
