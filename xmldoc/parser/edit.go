package parser

import (
	"fmt"
	"sort"
)

// EditDelta describes one contiguous replacement in the source text:
// OldWidth bytes starting at ChangeStart were replaced by NewWidth
// bytes. The blending engine operates on a single covering delta per
// re-parse; merge finer-grained changes with MergeDeltas first.
type EditDelta struct {
	ChangeStart int
	OldWidth    int
	NewWidth    int
}

// Delta is the length difference the edit introduces: positions at or
// past the end of the replaced range shift by this amount.
func (e EditDelta) Delta() int {
	return e.NewWidth - e.OldWidth
}

// Validate checks the edit against the actual text lengths. A delta
// inconsistent with the texts is a caller bug, reported eagerly rather
// than blended into a silently wrong tree.
func (e EditDelta) Validate(oldLen, newLen int) error {
	if e.ChangeStart < 0 || e.OldWidth < 0 || e.NewWidth < 0 {
		return fmt.Errorf("edit delta has negative component: %+v", e)
	}
	if e.ChangeStart+e.OldWidth > oldLen {
		return fmt.Errorf("edit delta %+v exceeds old text length %d", e, oldLen)
	}
	if oldLen-e.OldWidth+e.NewWidth != newLen {
		return fmt.Errorf("edit delta %+v inconsistent with text lengths %d -> %d", e, oldLen, newLen)
	}
	return nil
}

// Apply replaces the edited range of old with replacement and returns
// the new text. len(replacement) must equal NewWidth.
func (e EditDelta) Apply(old, replacement []byte) ([]byte, error) {
	if len(replacement) != e.NewWidth {
		return nil, fmt.Errorf("replacement is %d bytes, delta says %d", len(replacement), e.NewWidth)
	}
	if e.ChangeStart < 0 || e.ChangeStart+e.OldWidth > len(old) {
		return nil, fmt.Errorf("edit delta %+v out of range for %d bytes", e, len(old))
	}
	out := make([]byte, 0, len(old)+e.Delta())
	out = append(out, old[:e.ChangeStart]...)
	out = append(out, replacement...)
	out = append(out, old[e.ChangeStart+e.OldWidth:]...)
	return out, nil
}

// MergeDeltas folds several non-overlapping edits, all expressed in old
// text coordinates, into the single covering delta the blender works
// with.
func MergeDeltas(deltas []EditDelta) (EditDelta, error) {
	if len(deltas) == 0 {
		return EditDelta{}, fmt.Errorf("no deltas to merge")
	}
	sorted := make([]EditDelta, len(deltas))
	copy(sorted, deltas)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ChangeStart < sorted[j].ChangeStart
	})

	for i, d := range sorted {
		if d.ChangeStart < 0 || d.OldWidth < 0 || d.NewWidth < 0 {
			return EditDelta{}, fmt.Errorf("delta %d has negative component: %+v", i, d)
		}
		if i > 0 {
			prev := sorted[i-1]
			if d.ChangeStart < prev.ChangeStart+prev.OldWidth {
				return EditDelta{}, fmt.Errorf("deltas %d and %d overlap", i-1, i)
			}
		}
	}

	first := sorted[0]
	last := sorted[len(sorted)-1]
	covered := last.ChangeStart + last.OldWidth - first.ChangeStart
	shift := 0
	for _, d := range sorted {
		shift += d.Delta()
	}
	return EditDelta{
		ChangeStart: first.ChangeStart,
		OldWidth:    covered,
		NewWidth:    covered + shift,
	}, nil
}

// affectedRange is the half-open old-text range the edit may have
// influenced, after widening the raw replaced span for lexical
// context sensitivity.
type affectedRange struct {
	start int
	end   int
}

// computeAffectedRange widens the edit's replaced span. A zero-width
// insertion is treated as touching the character to its left, so a
// token ending exactly at the insertion point is forced to relex. The
// range is then extended backward by lookback tokens of the old tree,
// because a token's scan can depend on what follows it (a text run ends
// where the next tag begins; change the tag and the run must rescan).
func computeAffectedRange(root *Node, e EditDelta, lookback int) affectedRange {
	start := e.ChangeStart
	if e.OldWidth == 0 && start > 0 {
		start--
	}
	for i := 0; i < lookback && start > 0; i++ {
		ts, _, ok := tokenRangeAt(root, start-1)
		if !ok {
			break
		}
		start = ts
	}
	return affectedRange{start: start, end: e.ChangeStart + e.OldWidth}
}

func (r affectedRange) overlaps(start, end int) bool {
	return start < r.end && end > r.start
}
