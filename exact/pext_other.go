//go:build !amd64

package exact

func pextHardware(src, mask uint64) uint64 {
	return pextPortable(src, mask)
}
