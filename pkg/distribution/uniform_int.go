package distribution

import (
	"math"

	"golang.org/x/exp/constraints"
)

// UniformInt returns an integer uniformly distributed over the closed
// range [a, b]. It returns a when b < a.
//
// All arithmetic is carried out on uint64 words, which lets a single
// implementation serve every integer width and keeps the consumed
// generator words identical to std::uniform_int_distribution.
func UniformInt[T constraints.Integer](g Generator, a, b T) T {
	if b < a {
		return a
	}
	urange := uint64(b) - uint64(a)
	return T(uint64(a) + uniform(g, urange))
}

// uniform returns a value in [0, urange].
func uniform(g Generator, urange uint64) uint64 {
	urngmin := uint64(g.Min())
	urngrange := uint64(g.Max()) - urngmin

	switch {
	case urngrange > urange:
		uerange := urange + 1
		if urngrange == math.MaxUint32 {
			return nearlyDivisionless(g, uint32(uerange))
		}
		scaling := urngrange / uerange
		past := uerange * scaling
		for {
			ret := uint64(g.Uint32()) - urngmin
			if ret < past {
				return ret / scaling
			}
		}
	case urngrange < urange:
		uerngrange := urngrange + 1
		for {
			// tmp wraps around when the high part overshoots.
			tmp := uerngrange * uniform(g, urange/uerngrange)
			ret := tmp + (uint64(g.Uint32()) - urngmin)
			if ret <= urange && ret >= tmp {
				return ret
			}
		}
	default:
		return uint64(g.Uint32()) - urngmin
	}
}

// nearlyDivisionless maps a full 32-bit word onto [0, r) with Lemire's
// multiply-and-shift method, rejecting the biased low products.
func nearlyDivisionless(g Generator, r uint32) uint64 {
	product := uint64(g.Uint32()) * uint64(r)
	low := uint32(product)
	if low < r {
		threshold := -r % r
		for low < threshold {
			product = uint64(g.Uint32()) * uint64(r)
			low = uint32(product)
		}
	}
	return product >> 32
}
