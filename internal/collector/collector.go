package collector

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

type probeFunc func(env *probeEnv, r *Result)

type probe struct {
	category string
	fields   []string
	columns  []string
	run      probeFunc
}

// probes run in this order; it matches Categories.
var probes = []probe{
	{CategorySystem, systemFields, nil, probeSystem},
	{CategoryCPU, cpuFields, nil, probeCPU},
	{CategoryMemory, memoryFields, nil, probeMemory},
	{CategoryDisk, diskFields, diskColumns, probeDisk},
	{CategoryBIOS, biosFields, nil, probeBIOS},
	{CategoryNetwork, networkFields, networkColumns, probeNetwork},
	{CategoryMotherboard, motherboardFields, nil, probeMotherboard},
	{CategoryPeripherals, peripheralFields, nil, probePeripherals},
	{CategoryVideo, videoFields, videoColumns, probeVideo},
	{CategoryMonitor, monitorFields, monitorColumns, probeMonitor},
	{CategoryAudio, audioFields, nil, probeAudio},
}

// DeclaredFields returns the field labels category always reports.
func DeclaredFields(category string) []string {
	for _, p := range probes {
		if p.category == category {
			return append([]string(nil), p.fields...)
		}
	}
	return nil
}

// DeclaredColumns returns the row columns of a row category.
func DeclaredColumns(category string) []string {
	for _, p := range probes {
		if p.category == category {
			return append([]string(nil), p.columns...)
		}
	}
	return nil
}

// Collector runs every probe against a host and assembles a Report.
type Collector struct {
	host Host
	open Opener
	log  *log.Helper
}

// New creates a Collector. open is only called on Windows hosts.
func New(host Host, open Opener, logger log.Logger) *Collector {
	if logger == nil {
		logger = log.NewStdLogger(io.Discard)
	}
	if open == nil {
		open = OpenInstrumentation
	}
	return &Collector{
		host: host,
		open: open,
		log:  log.NewHelper(log.With(logger, "module", "collector")),
	}
}

// Collect gathers a full inventory from the local host.
func Collect(logger log.Logger, opts LocalOptions) *Report {
	return New(NewLocalHost(opts), OpenInstrumentation, logger).Collect()
}

// Collect runs every probe under a fresh run ID.
func (c *Collector) Collect() *Report {
	return c.CollectAs(uuid.NewString())
}

// CollectAs runs every probe in order and tags the report with id. It always
// returns a complete report; failures are recorded on the affected results.
func (c *Collector) CollectAs(id string) *Report {
	hostname, _ := os.Hostname()

	rep := &Report{
		ID:          id,
		Hostname:    hostname,
		CollectedAt: time.Now().UTC(),
	}

	env := &probeEnv{host: c.host}
	if c.host.GOOS() == "windows" {
		inst, err := c.openSession()
		if err != nil {
			c.log.Warnf("instrumentation session unavailable: %v", err)
			env.instErr = err
		} else {
			env.inst = inst
			defer c.closeSession(inst)
		}
	}

	for _, p := range probes {
		rep.Results = append(rep.Results, c.runProbe(env, p))
	}
	return rep
}

func (c *Collector) openSession() (inst Instrumentation, err error) {
	defer func() {
		if v := recover(); v != nil {
			inst, err = nil, ErrSourceUnavailable.WithCause(fmt.Errorf("open panicked: %v", v))
		}
	}()
	inst, err = c.open()
	if err != nil {
		if !errors.Is(err, ErrSourceUnavailable) {
			err = ErrSourceUnavailable.WithCause(err)
		}
		return nil, err
	}
	if inst == nil {
		return nil, ErrSourceUnavailable.WithCause(stderrors.New("no session returned"))
	}
	return inst, nil
}

func (c *Collector) closeSession(inst Instrumentation) {
	defer func() {
		if v := recover(); v != nil {
			c.log.Warnf("close instrumentation session panicked: %v", v)
		}
	}()
	if err := inst.Close(); err != nil {
		c.log.Warnf("close instrumentation session: %v", err)
	}
}

func (c *Collector) runProbe(env *probeEnv, p probe) (res Result) {
	res = Result{
		Category: p.category,
		Fields:   newFields(p.fields...),
		Columns:  p.columns,
	}
	start := time.Now()

	defer func() {
		if v := recover(); v != nil {
			res.fail(ErrQueryFailed.WithCause(fmt.Errorf("probe panicked: %v", v)))
		}
		switch res.Status {
		case StatusPartial:
			c.log.Warnw("msg", "probe failed", "category", res.Category, "note", res.Note)
		default:
			c.log.Debugw("msg", "probe finished", "category", res.Category, "status", res.Status.String(), "elapsed", time.Since(start).String())
		}
	}()

	p.run(env, &res)
	return res
}

type probeEnv struct {
	host    Host
	inst    Instrumentation
	instErr error
}

func (e *probeEnv) windows() bool { return e.host.GOOS() == "windows" }

// instrumentation returns the run's session, ErrNotApplicable off Windows,
// or the error that kept the session from opening.
func (e *probeEnv) instrumentation() (Instrumentation, error) {
	if !e.windows() {
		return nil, ErrNotApplicable
	}
	if e.instErr != nil {
		return nil, e.instErr
	}
	return e.inst, nil
}

func (r *Result) set(label, value string) {
	r.Fields.Set(label, value)
}

// fail records a category-level failure. NotApplicable marks the whole
// category unavailable; anything else makes it partial.
func (r *Result) fail(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrNotApplicable) {
		r.Status = StatusUnavailable
		r.Note = ErrNotApplicable.Message
		return
	}
	r.addNote(err)
}

// warn records a field-level failure. NotApplicable leaves the affected
// fields at the placeholder without changing the status.
func (r *Result) warn(err error) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			r.warn(e)
		}
		return
	}
	if err == nil || errors.Is(err, ErrNotApplicable) {
		return
	}
	r.addNote(err)
}

func (r *Result) addNote(err error) {
	if r.Status == StatusUnavailable {
		return
	}
	r.Status = StatusPartial
	note := noteFor(err)
	switch {
	case r.Note == "":
		r.Note = note
	case !strings.Contains(r.Note, note):
		r.Note += "; " + note
	}
}
