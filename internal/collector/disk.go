package collector

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var diskFields = []string{
	"Total Space (GB)",
	"Used Space (GB)",
	"Free Space (GB)",
	"Usage (%)",
	"Volumes",
}

var diskColumns = []string{
	"Device",
	"Mount Point",
	"File System Type",
	"Total Space (GB)",
	"Used Space (GB)",
	"Free Space (GB)",
	"Usage (%)",
}

// opticalFSTypes are filesystems only found on optical media.
var opticalFSTypes = []string{"iso9660", "udf", "cdfs"}

// eligibleVolume skips removable and optical media and volumes without a
// reported filesystem type.
func eligibleVolume(v Volume) bool {
	if v.FSType == "" || v.Removable {
		return false
	}
	if slices.Contains(v.Opts, "cdrom") {
		return false
	}
	return !slices.Contains(opticalFSTypes, strings.ToLower(v.FSType))
}

type diskTotals struct {
	total, used, free uint64
}

func (t *diskTotals) add(u VolumeUsage) {
	t.total += u.Total
	t.used += u.Used
	t.free += u.Free
}

// usagePercent is used/total*100 with one decimal, or the placeholder when
// total is zero.
func usagePercent(used, total uint64) string {
	if total == 0 {
		return Placeholder
	}
	return fmt.Sprintf("%.1f", float64(used)/float64(total)*100)
}

// probeDisk emits one row per eligible volume and the totals across them.
// A volume whose usage cannot be read keeps its identity columns only.
func probeDisk(env *probeEnv, r *Result) {
	vols, err := env.host.Volumes()
	if err != nil && len(vols) == 0 {
		r.fail(err)
		return
	}
	r.warn(err)

	var (
		totals diskTotals
		n      int
	)
	for _, v := range vols {
		if !eligibleVolume(v) {
			continue
		}
		n++

		var row Fields
		row.Set("Device", v.Device)
		row.Set("Mount Point", v.Mountpoint)
		row.Set("File System Type", v.FSType)
		u, err := env.host.Usage(v.Mountpoint)
		if err != nil {
			r.warn(err)
			r.Rows = append(r.Rows, row)
			continue
		}
		totals.add(u)
		row.Set("Total Space (GB)", gib(u.Total))
		row.Set("Used Space (GB)", gib(u.Used))
		row.Set("Free Space (GB)", gib(u.Free))
		row.Set("Usage (%)", usagePercent(u.Used, u.Total))
		r.Rows = append(r.Rows, row)
	}

	r.set("Total Space (GB)", gib(totals.total))
	r.set("Used Space (GB)", gib(totals.used))
	r.set("Free Space (GB)", gib(totals.free))
	r.set("Usage (%)", usagePercent(totals.used, totals.total))
	r.set("Volumes", strconv.Itoa(n))
}
