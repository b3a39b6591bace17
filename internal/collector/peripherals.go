package collector

import "strings"

var peripheralFields = []string{
	"Mouse",
	"Keyboard",
}

// probePeripherals names the first pointing device and keyboard. Each is
// queried separately so one failing class does not hide the other.
func probePeripherals(env *probeEnv, r *Result) {
	inst, err := env.instrumentation()
	if err != nil {
		r.fail(err)
		return
	}

	var mice []win32PointingDevice
	if err := inst.Query(queryPointingDevice, &mice); err != nil {
		r.warn(queryFailed("Win32_PointingDevice", err))
	} else if len(mice) > 0 {
		r.set("Mouse", strings.TrimSpace(mice[0].Name))
	}

	var keyboards []win32Keyboard
	if err := inst.Query(queryKeyboard, &keyboards); err != nil {
		r.warn(queryFailed("Win32_Keyboard", err))
	} else if len(keyboards) > 0 {
		r.set("Keyboard", strings.TrimSpace(keyboards[0].Name))
	}
}
