//go:build !linux && !windows

package collector

func volumeRemovable(string) bool { return false }
