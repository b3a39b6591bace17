//go:build windows

package collector

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func uname() (Platform, error) {
	v := windows.RtlGetVersion()
	node, _ := os.Hostname()

	return Platform{
		System:    "Windows",
		Node:      node,
		Release:   fmt.Sprintf("%d", v.MajorVersion),
		Version:   fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
		Machine:   os.Getenv("PROCESSOR_ARCHITECTURE"),
		Processor: os.Getenv("PROCESSOR_IDENTIFIER"),
	}, nil
}
