//go:build amd64

package exact

// pext64 executes PEXTQ. Callers must check hasBMI2 first.
//
//go:noescape
func pext64(src, mask uint64) uint64

func pextHardware(src, mask uint64) uint64 {
	return pext64(src, mask)
}
