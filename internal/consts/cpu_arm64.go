package consts

import "golang.org/x/sys/cpu"

// CPUFeatures names the SHA-2 instructions detected on this CPU, or is empty.
var CPUFeatures = func() string {
	if cpu.ARM64.HasSHA2 {
		return "sha2"
	}
	return ""
}()
