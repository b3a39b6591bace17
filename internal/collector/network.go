package collector

import "strconv"

var networkFields = []string{
	"Interfaces",
	"Primary IP Address",
}

var networkColumns = []string{
	"Interface",
	"MAC Address",
	"IP Address",
}

// interfaceEntry builds the row for iface from its first link-layer and
// first IPv4 address. It reports false when the interface has neither.
func interfaceEntry(iface Interface) (Fields, bool) {
	var mac, ip string
	for _, a := range iface.Addrs {
		switch a.Family {
		case FamilyLink:
			if mac == "" {
				mac = a.Value
			}
		case FamilyIPv4:
			if ip == "" {
				ip = a.Value
			}
		}
	}
	if mac == "" && ip == "" {
		return nil, false
	}

	row := Fields{{Label: "Interface", Value: iface.Name}}
	if mac != "" {
		row = append(row, Field{Label: "MAC Address", Value: mac})
	}
	if ip != "" {
		row = append(row, Field{Label: "IP Address", Value: ip})
	}
	return row, true
}

func probeNetwork(env *probeEnv, r *Result) {
	ifaces, err := env.host.Interfaces()
	if err != nil {
		r.fail(err)
		return
	}

	var primary string
	for _, iface := range ifaces {
		row, ok := interfaceEntry(iface)
		if !ok {
			continue
		}
		r.Rows = append(r.Rows, row)
		if ip, ok := row.Get("IP Address"); ok && primary == "" && !iface.Loopback {
			primary = ip
		}
	}
	r.set("Interfaces", strconv.Itoa(len(r.Rows)))
	r.set("Primary IP Address", primary)
}
