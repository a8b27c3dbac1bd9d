package consts

import (
	"golang.org/x/sys/cpu"
)

// CPUFeatures names the vector extensions detected on this CPU that
// crypto/sha256 can use for its block function. It is a hint for display and
// does not say which block function the runtime picked.
var CPUFeatures = func() string {
	if cpu.X86.HasAVX2 && cpu.X86.HasBMI2 {
		return "avx2,bmi2"
	}
	return ""
}()
