// Modular search over linear congruential sequences. The exhaustive
// verifier uses it to enumerate significands whose scaled low word
// carries into the truncated part of a power of 10 without visiting
// every significand.

package zmij

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

// NotFound is returned by FindMinN when no solution exists.
const NotFound = ^uint64(0)

// FindMinN finds the smallest n >= 0 such that (n * step) % mod is in
// [lower, upper], where upper < mod, by solving a linear congruential
// inequality via modular interval reduction.
func FindMinN(step uint64, mod int128.Uint128, lower, upper uint64) uint64 {
	if step == 0 {
		return NotFound
	}
	if lower > upper {
		return NotFound
	}
	if lower == 0 {
		return 0 // current position is already a hit
	}

	// Check for a direct hit without wrapping.
	n := (lower-1)/step + 1 // ceil(lower / step)
	if hi, lo := bits.Mul64(n, step); hi == 0 && lo <= upper {
		return n
	}

	// Apply recursive modular interval reduction with reflected bounds.
	remUpper := upper % step
	remLower := lower % step
	var refLower, refUpper uint64
	if remUpper != 0 {
		refLower = step - remUpper
	}
	if remLower != 0 {
		refUpper = step - remLower
	}
	stepWide := int128.Uint128{L: step}
	_, rem := mod.DivMod(stepWide)
	m := FindMinN(rem.L, stepWide, refLower, refUpper)
	if m == NotFound {
		return NotFound
	}
	// (m * mod + lower + step - 1) / step
	t := mod.Mul(int128.Uint128{L: m}).
		Add(int128.Uint128{L: lower}).
		Add(int128.Uint128{L: step - 1})
	q, _ := t.DivMod(stepWide)
	return q.L
}

// FindCarriedAwayDoubles calls onHit for every binary significand s in
// [first, last) for which the low 64 bits of pow10Lo * (s << shift)
// plus s << shift carry out of 64 bits, without enumerating the whole
// range. FindMinN jumps directly to the next candidate; a candidate is
// re-checked exactly because the jump threshold is derived from the
// largest significand in the range.
func FindCarriedAwayDoubles(pow10Lo uint64, shift uint, first, last uint64, onHit func(uint64)) {
	if first >= last {
		return
	}
	count := last - first
	step := pow10Lo << shift
	start := pow10Lo * (first << shift)
	threshold := -((last - 1) << shift) // 2**64 - ((last-1) << shift)
	mod := int128.Uint128{H: 1}         // 2**64

	var total uint64
	for {
		var n uint64
		if start < threshold {
			// The target range never wraps because start < threshold.
			n = FindMinN(step, mod, threshold-start, ^uint64(0)-start)
			if n == NotFound {
				return
			}
		}
		total += n
		if total >= count {
			return
		}
		start += n * step

		sig := first + total
		if start+(sig<<shift) < start {
			onHit(sig)
		}
		start += step
		total++
	}
}
