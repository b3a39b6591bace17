//go:build windows

package collector

import "github.com/yusufpapurcu/wmi"

type wmiSession struct {
	svc *wmi.SWbemServices
}

// OpenInstrumentation connects to the local WMI service. The returned
// session owns its COM apartment until Close is called.
func OpenInstrumentation() (Instrumentation, error) {
	svc, err := wmi.InitializeSWbemServices(wmi.DefaultClient)
	if err != nil {
		return nil, ErrSourceUnavailable.WithCause(err)
	}
	return &wmiSession{svc: svc}, nil
}

func (s *wmiSession) Query(query string, dst any) error {
	return s.svc.Query(query, dst)
}

func (s *wmiSession) Close() error {
	return s.svc.Close()
}
