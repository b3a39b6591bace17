//go:build linux

package collector

import (
	"os"
	"path/filepath"
	"strings"
)

// volumeRemovable reports the sysfs removable flag of the disk holding device.
func volumeRemovable(device string) bool {
	if !strings.HasPrefix(device, "/dev/") {
		return false
	}
	dir, err := filepath.EvalSymlinks(filepath.Join("/sys/class/block", filepath.Base(device)))
	if err != nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(dir, "partition")); err == nil {
		dir = filepath.Dir(dir)
	}
	data, err := os.ReadFile(filepath.Join(dir, "removable"))
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "1"
}
