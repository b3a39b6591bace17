//go:build windows

package collector

import "golang.org/x/sys/windows"

// volumeRemovable reports whether the drive holding device is removable
// media such as a USB stick or a card reader.
func volumeRemovable(device string) bool {
	root, err := windows.UTF16PtrFromString(driveRoot(device))
	if err != nil {
		return false
	}
	return windows.GetDriveType(root) == windows.DRIVE_REMOVABLE
}
