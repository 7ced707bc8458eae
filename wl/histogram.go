package wl

import "sort"

// buildStep snapshots the current labels of both sides into a fresh Step.
// Every map and slice in the result is newly allocated.
func buildStep(k int, sides [2]*side, mappings []Mapping) Step {
	labelsA, countsA := snapshot(sides[0])
	labelsB, countsB := snapshot(sides[1])

	return Step{
		K:                     k,
		LabelsA:               labelsA,
		LabelsB:               labelsB,
		LabelCountsA:          countsA,
		LabelCountsB:          countsB,
		UniqueLabels:          uniqueLabels(countsA, countsB),
		Mappings:              mappings,
		IsIsomorphicCandidate: sameHistogram(countsA, countsB),
	}
}

// snapshot returns node ID → label and label → count for one side.
func snapshot(s *side) (map[string]LabelID, map[LabelID]int) {
	n := s.ix.Len()
	labels := make(map[string]LabelID, n)
	counts := make(map[LabelID]int)
	for i := 0; i < n; i++ {
		id := labelID(s.labels[i])
		labels[s.ix.ID(i)] = id
		counts[id]++
	}
	return labels, counts
}

// uniqueLabels returns the union of both histograms' keys sorted by numeric value.
func uniqueLabels(a, b map[LabelID]int) []LabelID {
	out := make([]LabelID, 0, len(a)+len(b))
	for id := range a {
		out = append(out, id)
	}
	for id := range b {
		if _, dup := a[id]; !dup {
			out = append(out, id)
		}
	}
	sortLabels(out)

	return out
}

// sortLabels orders ids by numeric value.
func sortLabels(ids []LabelID) {
	sort.Slice(ids, func(i, j int) bool { return labelValue(ids[i]) < labelValue(ids[j]) })
}

// sameHistogram reports whether a and b hold the same keys with equal counts.
// Two empty histograms are equal.
func sameHistogram(a, b map[LabelID]int) bool {
	if len(a) != len(b) {
		return false
	}
	for id, n := range a {
		if m, ok := b[id]; !ok || m != n {
			return false
		}
	}
	return true
}
