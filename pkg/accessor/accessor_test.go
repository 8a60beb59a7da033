package accessor_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/accessor"
	"github.com/dmitrymomot/uakit/pkg/config"
	"github.com/dmitrymomot/uakit/pkg/decomposer"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1"
)

// ambient is a swappable host value, standing in for a browser's navigator.
type ambient struct {
	value string
	reads int
}

func (a *ambient) UserAgent() string {
	a.reads++
	return a.value
}

// countingDecomposer wraps the keyword parser and counts invocations.
type countingDecomposer struct {
	calls int
}

func (c *countingDecomposer) Decompose(raw string) (useragent.Info, error) {
	c.calls++
	return useragent.Parse(raw)
}

func TestNewRaw_PassThrough(t *testing.T) {
	t.Parallel()

	inputs := []string{"", chromeWindowsUA, safariIPhoneUA, "  padded  ", "ünïcødé/1.0", "garbage"}
	for _, in := range inputs {
		acc := accessor.NewRaw(accessor.Static(in))
		assert.Equal(t, in, acc.Get())
		assert.Equal(t, in, acc.Get())
	}
}

func TestNewRaw_ObservesChanges(t *testing.T) {
	t.Parallel()

	host := &ambient{value: "first"}
	acc := accessor.NewRaw(host)

	assert.Equal(t, "first", acc.Get())
	host.value = "second"
	assert.Equal(t, "second", acc.Get())
	assert.Equal(t, 2, host.reads, "provider must be read on every call")
}

func TestAccessor_Memoizes(t *testing.T) {
	t.Parallel()

	host := &ambient{value: chromeWindowsUA}
	calls := 0
	acc := accessor.New(host, func(raw string) int {
		calls++
		return len(raw)
	})

	for range 5 {
		assert.Equal(t, len(chromeWindowsUA), acc.Get())
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, 5, host.reads)

	host.value = safariIPhoneUA
	assert.Equal(t, len(safariIPhoneUA), acc.Get())
	assert.Equal(t, 2, calls)

	// Switching back is a change too: only one value is cached.
	host.value = chromeWindowsUA
	acc.Get()
	assert.Equal(t, 3, calls)
}

func TestAccessor_FirstCallWithEmptyString(t *testing.T) {
	t.Parallel()

	calls := 0
	acc := accessor.New(accessor.Static(""), func(raw string) string {
		calls++
		return "derived:" + raw
	})

	assert.Equal(t, "derived:", acc.Get())
	assert.Equal(t, "derived:", acc.Get())
	assert.Equal(t, 1, calls, "the first call must derive even though the input is empty")
}

func TestAccessor_Reset(t *testing.T) {
	t.Parallel()

	calls := 0
	acc := accessor.New(accessor.Static("ua"), func(raw string) string {
		calls++
		return raw
	})

	acc.Get()
	acc.Reset()
	acc.Get()
	assert.Equal(t, 2, calls)
}

func TestAccessor_NilProviderAndDerive(t *testing.T) {
	t.Parallel()

	raw := accessor.NewRaw(nil)
	assert.Equal(t, "", raw.Get())

	acc := accessor.New[int](accessor.Static("ua"), nil)
	assert.Equal(t, 0, acc.Get())
}

func TestAccessor_InstancesAreIndependent(t *testing.T) {
	t.Parallel()

	d := &countingDecomposer{}
	host := &ambient{value: chromeWindowsUA}

	first := accessor.NewParsed(host, d)
	second := accessor.NewParsed(host, d)

	a := first.Get()
	b := second.Get()

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 2, d.calls, "caches are not shared between instances")
	assert.Equal(t, *a, *b)
	assert.NotSame(t, a, b)
}

func TestNewParsed_ReferenceStable(t *testing.T) {
	t.Parallel()

	d := &countingDecomposer{}
	host := &ambient{value: chromeWindowsUA}
	acc := accessor.NewParsed(host, d)

	first := acc.Get()
	second := acc.Get()
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, 1, d.calls)

	host.value = safariIPhoneUA
	third := acc.Get()
	assert.NotSame(t, first, third)
	assert.Equal(t, safariIPhoneUA, third.FullString)
	assert.Equal(t, 2, d.calls)

	// The replaced record is discarded, not patched in place.
	assert.Equal(t, chromeWindowsUA, first.FullString)
}

func TestNewParsed_Desktop(t *testing.T) {
	t.Parallel()

	info := accessor.NewParsed(accessor.Static(chromeWindowsUA), useragent.Parser{}).Get()
	require.NotNil(t, info)

	assert.Equal(t, chromeWindowsUA, info.FullString)
	assert.Equal(t, "Chrome", info.Browser.Name)
	assert.Equal(t, "114", info.Browser.MajorVersion)
	assert.Equal(t, useragent.OSWindows, info.OS.Name)
	assert.Empty(t, info.Device.Type)
	assert.True(t, info.Device.IsZero())
}

func TestNewParsed_Mobile(t *testing.T) {
	t.Parallel()

	info := accessor.NewParsed(accessor.Static(safariIPhoneUA), useragent.Parser{}).Get()
	require.NotNil(t, info)

	assert.Equal(t, useragent.DeviceTypeMobile, info.Device.Type)
	assert.Equal(t, useragent.OSiOS, info.OS.Name)
}

func TestNewParsed_EmptyAndGarbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "garbage", "\x00\xff"} {
		info := accessor.NewParsed(accessor.Static(raw), useragent.Parser{}).Get()
		require.NotNil(t, info, "%q", raw)

		assert.Equal(t, raw, info.FullString)
		assert.Empty(t, info.Browser.Name)
		assert.Empty(t, info.OS.Name)
		assert.True(t, info.Device.IsZero())
	}
}

func TestNewParsed_RecoversFromDecomposerFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    useragent.Decomposer
	}{
		{
			name: "panic",
			d: useragent.DecomposerFunc(func(string) (useragent.Info, error) {
				panic("parser exploded")
			}),
		},
		{
			name: "error with partial record",
			d: useragent.DecomposerFunc(func(raw string) (useragent.Info, error) {
				return useragent.Info{Browser: useragent.Browser{Name: "Half"}}, assert.AnError
			}),
		},
		{
			name: "nil decomposer",
			d:    nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
			acc := accessor.NewParsed(accessor.Static(chromeWindowsUA), tc.d, accessor.WithLogger(log))

			var info *useragent.Info
			require.NotPanics(t, func() { info = acc.Get() })
			require.NotNil(t, info)
			assert.Equal(t, chromeWindowsUA, info.FullString)
			assert.Empty(t, info.Browser.Name)
			assert.Same(t, info, acc.Get())
		})
	}
}

func TestNewParsed_LogsRecoveredPanic(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
	acc := accessor.NewParsed(
		accessor.Static("ua"),
		useragent.DecomposerFunc(func(string) (useragent.Info, error) { panic("boom") }),
		accessor.WithLogger(log),
		accessor.WithName("header"),
	)
	acc.Get()

	out := buf.String()
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "panic=boom")
	assert.Contains(t, out, "component=header")
	assert.Contains(t, out, "instance_id="+acc.ID().String())
}

func TestNewParsed_FullStringAlwaysRaw(t *testing.T) {
	t.Parallel()

	d := useragent.DecomposerFunc(func(string) (useragent.Info, error) {
		return useragent.Info{FullString: "rewritten", OS: useragent.OS{Name: "Plan 9"}}, nil
	})
	info := accessor.NewParsed(accessor.Static("original"), d).Get()
	assert.Equal(t, "original", info.FullString)
	assert.Equal(t, "Plan 9", info.OS.Name)
}

func TestNewParsed_AllDecomposers(t *testing.T) {
	t.Parallel()

	for _, name := range decomposer.Names() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			d, err := decomposer.New(name)
			require.NoError(t, err)

			host := &ambient{value: chromeWindowsUA}
			acc := accessor.NewParsed(host, d)

			desktop := acc.Get()
			assert.Equal(t, useragent.BrowserChrome, desktop.Browser.Name)
			assert.True(t, desktop.Device.IsZero())

			host.value = ""
			empty := acc.Get()
			assert.True(t, empty.IsZero())
		})
	}
}

func TestNewParsedFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{"UAKIT_DECOMPOSER": "uasurfer"})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	acc, err := accessor.NewParsedFromConfig(cfg, accessor.Static(safariIPhoneUA),
		accessor.WithLogger(logger.New(logger.WithOutput(buf))))
	require.NoError(t, err)

	info := acc.Get()
	assert.Equal(t, useragent.DeviceTypeMobile, info.Device.Type)
}

func TestNewParsedFromConfig_UnknownDecomposer(t *testing.T) {
	t.Parallel()

	acc, err := accessor.NewParsedFromConfig(config.Config{Decomposer: "nope"}, accessor.Static(""))
	require.ErrorIs(t, err, decomposer.ErrUnknownDecomposer)
	assert.Nil(t, acc)
}

func TestNewParsed_LogsDecomposedSummary(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
	accessor.NewParsed(accessor.Static(safariIPhoneUA), useragent.Parser{}, accessor.WithLogger(log)).Get()

	out := buf.String()
	assert.Contains(t, out, "user agent decomposed")
	assert.Contains(t, out, "agent.browser=Safari")
	assert.Contains(t, out, "agent.os=iOS")
	assert.Contains(t, out, "agent.device=mobile")
}
