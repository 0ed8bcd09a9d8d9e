package exact

import "golang.org/x/sys/cpu"

// extractFunc gathers the bits of src selected by mask into the low-order
// bits of the result, preserving their order (parallel bit extract).
type extractFunc func(src, mask uint64) uint64

// hasBMI2 is resolved once; cpu.X86 reports false on other architectures.
var hasBMI2 = cpu.X86.HasBMI2

// pextPortable walks mask from its lowest set bit upwards and copies the
// matching bit of src to the next dense output position.
func pextPortable(src, mask uint64) uint64 {
	var out uint64
	for dst := uint64(1); mask != 0; dst <<= 1 {
		low := mask & -mask
		if src&low != 0 {
			out |= dst
		}
		mask ^= low
	}

	return out
}

// selectExtract returns the hardware extract when it is available and not
// disabled by the caller.
func selectExtract(portable bool) extractFunc {
	if portable || !hasBMI2 {
		return pextPortable
	}

	return pextHardware
}
