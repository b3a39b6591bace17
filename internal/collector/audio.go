package collector

import "strings"

var audioFields = []string{"Audio Device"}

func probeAudio(env *probeEnv, r *Result) {
	inst, err := env.instrumentation()
	if err != nil {
		r.fail(err)
		return
	}

	var rows []win32SoundDevice
	if err := inst.Query(querySoundDevice, &rows); err != nil {
		r.fail(queryFailed("Win32_SoundDevice", err))
		return
	}
	if len(rows) > 0 {
		r.set("Audio Device", strings.TrimSpace(rows[0].Name))
	}
}
