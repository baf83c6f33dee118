package launch

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	name string
	args []string
}

type fakeExec struct {
	calls   []execCall
	results []execResult
}

type execResult struct {
	code int
	err  error
}

func (f *fakeExec) run(name string, args ...string) (int, error) {
	f.calls = append(f.calls, execCall{name: name, args: args})
	r := f.results[len(f.calls)-1]
	return r.code, r.err
}

func newLauncher(goos, goarch string, f *fakeExec) (*Launcher, *bytes.Buffer) {
	stderr := &bytes.Buffer{}
	return &Launcher{
		GOOS:      goos,
		GOARCH:    goarch,
		BinDir:    "bin",
		SourceDir: ".",
		Stdout:    &bytes.Buffer{},
		Stderr:    stderr,
		Exec:      f.run,
	}, stderr
}

func TestResolve(t *testing.T) {
	cases := map[[2]string]string{
		{"darwin", "arm64"}:  "mac_aarch64",
		{"darwin", "amd64"}:  "mac_x86_64",
		{"windows", "amd64"}: "windows_x86_64.exe",
		{"linux", "amd64"}:   "linux_x86_64",
		{"linux", "arm64"}:   "linux_aarch64",
	}
	for p, want := range cases {
		got, err := Resolve(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Resolve("windows", "arm64")
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestRun_UnsupportedPlatformExitsOneWithoutExec(t *testing.T) {
	f := &fakeExec{}
	l, stderr := newLauncher("freebsd", "amd64", f)

	assert.Equal(t, 1, l.Run())
	assert.Empty(t, f.calls)
	assert.Contains(t, stderr.String(), "freebsd/amd64")
}

func TestRun_PropagatesExitCode(t *testing.T) {
	f := &fakeExec{results: []execResult{{code: 3}}}
	l, _ := newLauncher("linux", "amd64", f)

	assert.Equal(t, 3, l.Run())
	require.Len(t, f.calls, 1)
	assert.Equal(t, filepath.Join("bin", "linux_x86_64"), f.calls[0].name)
}

func TestRun_FallsBackToSource(t *testing.T) {
	f := &fakeExec{results: []execResult{
		{err: errors.New("no such file")},
		{code: 0},
	}}
	l, _ := newLauncher("darwin", "arm64", f)

	assert.Equal(t, 0, l.Run())
	require.Len(t, f.calls, 2)
	assert.Equal(t, "go", f.calls[1].name)
	assert.Equal(t, []string{"run", "."}, f.calls[1].args)
}

func TestRun_FallbackFailureExitsOne(t *testing.T) {
	f := &fakeExec{results: []execResult{
		{err: errors.New("no such file")},
		{err: errors.New("go not installed")},
	}}
	l, _ := newLauncher("linux", "arm64", f)

	assert.Equal(t, 1, l.Run())
}
