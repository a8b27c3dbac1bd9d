//go:build !amd64 && !arm64
// +build !amd64,!arm64

package consts

// CPUFeatures is empty where no feature detection is done.
const CPUFeatures = ""
