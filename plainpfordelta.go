package pfor

import "math/bits"

// exceptionBudget bounds how many values a plain (non-optimizing) PForDelta
// block is allowed to spill as exceptions: spec.md describes OPT-PForDelta
// as the one that searches for a minimal-cost width, implying the plain
// PForDelta codec (encID 6) uses a cheaper, non-searching heuristic instead
// (spec.md §2: "D drives C" -- C is driven by whichever selector is
// supplied). This mirrors the classic PForDelta heuristic of picking the
// width that covers most of the block and letting outliers become
// exceptions, capped so exceptions can't dominate the block.
const exceptionBudget = 0.1 // at most 10% of a block may be exceptions

// SelectHeuristicWidth implements the plain PForDelta selector: it picks the
// smallest candidate width whose exception count stays within
// exceptionBudget of the block length, falling back to 32 (no exceptions)
// if none qualifies. Unlike SelectBestWidth, it never evaluates the
// Simple16 sideband cost -- it only counts how many values would spill.
func SelectHeuristicWidth(e *Encoder, values []uint32, n int) int {
	if n == 0 {
		return 0
	}
	var hist [33]int
	maxWidth := 0
	for i := 0; i < n; i++ {
		w := bits.Len32(values[i])
		hist[w]++
		if w > maxWidth {
			maxWidth = w
		}
	}

	budget := int(float64(n) * exceptionBudget)
	exceeding := n
	for w := 0; w <= maxWidth; w++ {
		exceeding -= hist[w]
		if exceeding <= budget {
			return nearestCandidate(w)
		}
	}
	return 32
}

// nearestCandidate rounds w up to the next width present in Candidates, so
// the plain codec's header and the OPT-PForDelta codec's header always draw
// from the same legal set of widths (spec.md §3 invariant).
func nearestCandidate(w int) int {
	for _, c := range Candidates {
		if c >= w {
			return c
		}
	}
	return 32
}

// EncodeArrayPlain is the plain PForDelta codec entry point (encID 6):
// same block/header/exception-sideband machinery as OPT-PForDelta, but
// widths come from SelectHeuristicWidth instead of an exhaustive search.
func (e *Encoder) EncodeArrayPlain(values []uint32, out []uint32) (int, error) {
	return e.encodeList(values, out, SelectHeuristicWidth)
}
