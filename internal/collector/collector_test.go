package collector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireComplete(t *testing.T, rep *Report) {
	t.Helper()
	require.NotEmpty(t, rep.ID)
	require.Len(t, rep.Results, len(Categories))
	for i, category := range Categories {
		res := rep.Results[i]
		require.Equal(t, category, res.Category)
		labels := res.Fields.Labels()
		for _, f := range DeclaredFields(category) {
			require.Contains(t, labels, f, "%s is missing %q", category, f)
		}
	}
}

func TestCollectSurvivesTotalFailure(t *testing.T) {
	for _, goos := range []string{"linux", "windows"} {
		t.Run(goos, func(t *testing.T) {
			c := New(failingHost(goos), failingOpener, nil)

			var rep *Report
			require.NotPanics(t, func() { rep = c.Collect() })
			requireComplete(t, rep)

			for _, res := range rep.Results {
				require.NotEqual(t, StatusOK, res.Status, res.Category)
				require.NotEmpty(t, res.Note, res.Category)
			}
		})
	}
}

func TestCollectWithoutInstrumentationSubsystem(t *testing.T) {
	h := &fakeHost{
		goos:     "linux",
		platform: Platform{System: "Linux", Node: "box"},
		user:     "alice",
		cpu:      CPUSpec{Name: "Test CPU", Logical: 8, Physical: 4},
		mem:      MemoryStat{Total: 8 << 30, Available: 4 << 30, Used: 4 << 30, UsedPercent: 50},
		boardErr: ErrNotApplicable,
		gpusErr:  ErrNotApplicable,
	}
	opened := false
	opener := func() (Instrumentation, error) {
		opened = true
		return &fakeSession{}, nil
	}

	rep := New(h, opener, nil).Collect()
	requireComplete(t, rep)
	require.False(t, opened, "instrumentation must not be opened off Windows")

	for _, category := range []string{
		CategoryBIOS,
		CategoryMotherboard,
		CategoryPeripherals,
		CategoryVideo,
		CategoryMonitor,
		CategoryAudio,
	} {
		res, ok := rep.Result(category)
		require.True(t, ok)
		require.Equal(t, StatusUnavailable, res.Status, category)
		require.Equal(t, "not supported on this platform", res.Note, category)
		for _, f := range res.Fields {
			require.Equal(t, Placeholder, f.Value, "%s/%s", category, f.Label)
		}
	}

	sys, _ := rep.Result(CategorySystem)
	require.Equal(t, StatusOK, sys.Status)
	v, _ := sys.Fields.Get("Product ID")
	require.Equal(t, Placeholder, v)
	v, _ = sys.Fields.Get("User Name")
	require.Equal(t, "alice", v)

	cpu, _ := rep.Result(CategoryCPU)
	require.Equal(t, StatusOK, cpu.Status)
	v, _ = cpu.Fields.Get("Logical Processors")
	require.Equal(t, "8", v)

	mem, _ := rep.Result(CategoryMemory)
	v, _ = mem.Fields.Get("Total Memory (GB)")
	require.Equal(t, "8.00", v)
	v, _ = mem.Fields.Get("Memory Usage (%)")
	require.Equal(t, "50.0", v)
}

func TestCollectIsolatesPanickingProbe(t *testing.T) {
	h := &fakeHost{goos: "linux", panicOn: "CPU", mem: MemoryStat{Total: 1 << 30}}

	rep := New(h, nil, nil).Collect()
	requireComplete(t, rep)

	cpu, _ := rep.Result(CategoryCPU)
	require.Equal(t, StatusPartial, cpu.Status)
	require.Contains(t, cpu.Note, "probe panicked")

	mem, _ := rep.Result(CategoryMemory)
	require.Equal(t, StatusOK, mem.Status)
}

func TestCollectClosesSessionOnce(t *testing.T) {
	s := &fakeSession{err: errBoom}
	rep := New(failingHost("windows"), openerFor(s), nil).Collect()
	requireComplete(t, rep)

	require.Equal(t, 1, s.closed)
	require.NotEmpty(t, s.queries)

	bios, _ := rep.Result(CategoryBIOS)
	require.Equal(t, StatusPartial, bios.Status)
	require.Contains(t, bios.Note, "Win32_BIOS")
	require.Contains(t, bios.Note, "boom")
}

func TestCollectWindowsSessionUnavailable(t *testing.T) {
	h := &fakeHost{goos: "windows"}
	rep := New(h, failingOpener, nil).Collect()
	requireComplete(t, rep)

	for _, category := range []string{CategoryBIOS, CategoryPeripherals, CategoryMonitor, CategoryAudio, CategoryMotherboard, CategoryVideo} {
		res, _ := rep.Result(category)
		require.Equal(t, StatusPartial, res.Status, category)
		require.Contains(t, res.Note, "instrumentation unavailable", category)
	}

	sys, _ := rep.Result(CategorySystem)
	require.Equal(t, StatusPartial, sys.Status)
}

func TestCollectWindowsProbes(t *testing.T) {
	s := &fakeSession{
		rows: map[string]any{
			queryOperatingSystem: []win32OperatingSystem{{SerialNumber: "00330-80000-00000-AA123", Version: "10.0.19045", Caption: "Microsoft Windows 10 Pro"}},
			queryProcessor:       []win32Processor{{ProcessorId: "BFEBFBFF000906EA", CurrentClockSpeed: 2400, MaxClockSpeed: 3600, L2CacheSize: 1536, L3CacheSize: 12288}},
			queryBIOS:            []win32BIOS{{Manufacturer: "LENOVO", SMBIOSBIOSVersion: "N2HET69W", ReleaseDate: "20230915000000.000000+000", SerialNumber: "PF1ABC"}},
			queryBaseBoard:       []win32BaseBoard{{Manufacturer: "LENOVO", Product: "20QV ", Version: "SDK0J40697 WIN", SerialNumber: "L1HF"}},
			queryPointingDevice:  []win32PointingDevice{{Name: "HID-compliant mouse"}},
			queryVideoController: []win32VideoController{
				{Name: "NVIDIA GeForce GTX 1650", VideoProcessor: "NVIDIA GeForce GTX 1650", AdapterRAM: 4 << 30 - 1, DriverVersion: "31.0.15.3623"},
				{Name: ""},
				{Name: "Intel(R) UHD Graphics 630"},
			},
			queryDesktopMonitor: []win32DesktopMonitor{{Name: "Generic PnP Monitor", ScreenHeight: 1080, ScreenWidth: 1920, Status: "OK"}},
			querySoundDevice:    []win32SoundDevice{{Name: "Realtek High Definition Audio"}},
		},
		errOn: map[string]error{queryKeyboard: errBoom},
	}
	h := &fakeHost{goos: "windows", cpu: CPUSpec{Name: "Intel(R) Core(TM) i7", Arch: "amd64"}}

	rep := New(h, openerFor(s), nil).Collect()
	requireComplete(t, rep)
	require.Equal(t, 1, s.closed)

	get := func(category, label string) string {
		t.Helper()
		res, ok := rep.Result(category)
		require.True(t, ok)
		v, ok := res.Fields.Get(label)
		require.True(t, ok, "%s/%s", category, label)
		return v
	}

	require.Equal(t, "00330-80000-00000-AA123", get(CategorySystem, "Product ID"))
	require.Equal(t, "Microsoft Windows 10 Pro 10.0.19045", get(CategorySystem, "Platform"))

	require.Equal(t, "BFEBFBFF000906EA", get(CategoryCPU, "Serial Number"))
	require.Equal(t, "2400.00 MHz", get(CategoryCPU, "Current Clock Speed"))
	require.Equal(t, "3600.00 MHz", get(CategoryCPU, "Max Clock Speed"))
	require.Equal(t, "12288 KB", get(CategoryCPU, "L3 Cache"))
	require.Equal(t, Placeholder, get(CategoryCPU, "L1 Cache"))

	require.Equal(t, "N2HET69W", get(CategoryBIOS, "BIOS Version"))
	require.Equal(t, "2023-09-15", get(CategoryBIOS, "Release Date"))

	require.Equal(t, "20QV", get(CategoryMotherboard, "Product"))

	require.Equal(t, "HID-compliant mouse", get(CategoryPeripherals, "Mouse"))
	require.Equal(t, Placeholder, get(CategoryPeripherals, "Keyboard"))
	periph, _ := rep.Result(CategoryPeripherals)
	require.Equal(t, StatusPartial, periph.Status)
	require.Contains(t, periph.Note, "Win32_Keyboard")

	video, _ := rep.Result(CategoryVideo)
	require.Equal(t, StatusOK, video.Status)
	require.Len(t, video.Rows, 2)
	require.Equal(t, "2", get(CategoryVideo, "Adapters"))
	require.Equal(t, "NVIDIA GeForce GTX 1650", get(CategoryVideo, "Primary Adapter"))
	ram, _ := video.Rows[0].Get("Adapter RAM")
	require.Equal(t, "4.0 GiB", ram)
	_, ok := video.Rows[1].Get("Adapter RAM")
	require.False(t, ok)

	monitor, _ := rep.Result(CategoryMonitor)
	require.Len(t, monitor.Rows, 1)
	width, _ := monitor.Rows[0].Get("Screen Width")
	require.Equal(t, "1920", width)

	require.Equal(t, "Realtek High Definition Audio", get(CategoryAudio, "Audio Device"))
}

func TestDeclaredFieldsUnknownCategory(t *testing.T) {
	require.Nil(t, DeclaredFields("Toaster"))
	require.Equal(t, diskColumns, DeclaredColumns(CategoryDisk))
}

func TestCollectAsUsesRunID(t *testing.T) {
	c := New(failingHost("linux"), failingOpener, nil)

	rep := c.CollectAs("run-7")
	require.Equal(t, "run-7", rep.ID)
	require.False(t, rep.CollectedAt.IsZero())

	require.NotEqual(t, c.Collect().ID, c.Collect().ID)
}

func TestCollectNilSession(t *testing.T) {
	nilOpener := func() (Instrumentation, error) { return nil, nil }

	var rep *Report
	require.NotPanics(t, func() { rep = New(&fakeHost{goos: "windows"}, nilOpener, nil).Collect() })
	requireComplete(t, rep)

	bios, _ := rep.Result(CategoryBIOS)
	require.Equal(t, StatusPartial, bios.Status)
	require.Contains(t, bios.Note, "instrumentation unavailable")
	require.Contains(t, bios.Note, "no session returned")
}

func TestCollectSurvivesPanickingClose(t *testing.T) {
	s := &fakeSession{closePanic: true}

	var rep *Report
	require.NotPanics(t, func() { rep = New(&fakeHost{goos: "windows"}, openerFor(s), nil).Collect() })
	requireComplete(t, rep)
	require.Equal(t, 1, s.closed)
}

func TestCollectLinuxBaseboardAndGPUs(t *testing.T) {
	h := &fakeHost{
		goos: "linux",
		board: Baseboard{
			Manufacturer: " ASUSTeK COMPUTER INC. ",
			Product:      "PRIME B450M-A\t",
			Version:      "Rev X.0x",
			SerialNumber: "",
		},
		gpus: []GPU{
			{Name: "  ", Processor: "ignored"},
			{Name: "TU117 [GeForce GTX 1650]", Processor: "NVIDIA Corporation", DriverVersion: "nvidia"},
			{Name: "0000:00:02.0"},
		},
	}

	rep := New(h, nil, nil).Collect()
	requireComplete(t, rep)

	board, _ := rep.Result(CategoryMotherboard)
	require.Equal(t, StatusOK, board.Status)
	require.Equal(t, Fields{
		{Label: "Manufacturer", Value: "ASUSTeK COMPUTER INC."},
		{Label: "Product", Value: "PRIME B450M-A"},
		{Label: "Version", Value: "Rev X.0x"},
		{Label: "Serial Number", Value: Placeholder},
	}, board.Fields)

	video, _ := rep.Result(CategoryVideo)
	require.Equal(t, StatusOK, video.Status)
	require.Len(t, video.Rows, 2)
	require.Equal(t, Fields{
		{Label: "Name", Value: "TU117 [GeForce GTX 1650]"},
		{Label: "Video Processor", Value: "NVIDIA Corporation"},
		{Label: "Driver Version", Value: "nvidia"},
	}, video.Rows[0])
	require.Equal(t, Fields{{Label: "Name", Value: "0000:00:02.0"}}, video.Rows[1])

	v, _ := video.Fields.Get("Adapters")
	require.Equal(t, "2", v)
	v, _ = video.Fields.Get("Primary Adapter")
	require.Equal(t, "TU117 [GeForce GTX 1650]", v)
}

func TestCollectLinuxBaseboardDenied(t *testing.T) {
	h := &fakeHost{goos: "linux", boardErr: ErrSourceUnavailable.WithCause(errBoom), gpusErr: queryFailed("gpu", errBoom)}

	rep := New(h, nil, nil).Collect()

	board, _ := rep.Result(CategoryMotherboard)
	require.Equal(t, StatusPartial, board.Status)
	require.Equal(t, "instrumentation unavailable: boom", board.Note)

	video, _ := rep.Result(CategoryVideo)
	require.Equal(t, StatusPartial, video.Status)
	require.Contains(t, video.Note, "gpu: boom")
}
