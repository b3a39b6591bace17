//go:build unix

package collector

import "golang.org/x/sys/unix"

// uname mirrors `uname -snrvm`; the processor is reported as the machine type.
func uname() (Platform, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Platform{}, queryFailed("uname", err)
	}

	machine := unix.ByteSliceToString(u.Machine[:])
	return Platform{
		System:    unix.ByteSliceToString(u.Sysname[:]),
		Node:      unix.ByteSliceToString(u.Nodename[:]),
		Release:   unix.ByteSliceToString(u.Release[:]),
		Version:   unix.ByteSliceToString(u.Version[:]),
		Machine:   machine,
		Processor: machine,
	}, nil
}
