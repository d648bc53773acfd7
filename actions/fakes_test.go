package actions

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vcnkl/provision/config"
	"github.com/vcnkl/provision/exec"
	"github.com/vcnkl/provision/logger"
	"github.com/vcnkl/provision/ui"
	"github.com/vcnkl/provision/watcher"
)

// recorder collects every external call as a readable line and fails the
// ones listed in fail.
type recorder struct {
	calls []string
	fail  map[string]bool
}

func (r *recorder) record(call string) error {
	r.calls = append(r.calls, call)
	if r.fail[call] {
		return errors.Errorf("%s: exit status 1", call)
	}
	return nil
}

type fakePackages struct {
	*recorder
	release string
}

func (f *fakePackages) Install(_ context.Context, pkgs ...string) error {
	return f.record("install " + strings.Join(pkgs, " "))
}

func (f *fakePackages) Remove(_ context.Context, pkgs ...string) error {
	return f.record("remove " + strings.Join(pkgs, " "))
}

func (f *fakePackages) Autoremove(context.Context) error {
	return f.record("autoremove")
}

func (f *fakePackages) Upgrade(_ context.Context, args ...string) error {
	return f.record(strings.TrimSpace("upgrade " + strings.Join(args, " ")))
}

func (f *fakePackages) Swap(_ context.Context, from, to string) error {
	return f.record("swap " + from + " " + to)
}

func (f *fakePackages) SetOption(_ context.Context, option string) error {
	return f.record("setopt " + option)
}

func (f *fakePackages) ReleaseVersion(context.Context) (string, error) {
	if err := f.record("release"); err != nil {
		return "", err
	}
	return f.release, nil
}

type fakeSandbox struct {
	*recorder
	available bool
}

func (f *fakeSandbox) Available() bool {
	return f.available
}

func (f *fakeSandbox) AddRemote(_ context.Context, name, url string) error {
	return f.record("remote-add " + name + " " + url)
}

func (f *fakeSandbox) Install(_ context.Context, remote, app string) error {
	return f.record("flatpak install " + remote + " " + app)
}

type fakeModules struct {
	*recorder
	version string
}

func (f *fakeModules) GenerateSigningKey(context.Context) error {
	return f.record("kmodgenca")
}

func (f *fakeModules) EnrollKey(_ context.Context, cert string) error {
	return f.record("mokutil " + cert)
}

func (f *fakeModules) ModuleVersion(_ context.Context, module string) (string, error) {
	if err := f.record("modinfo " + module); err != nil {
		return "", err
	}
	return f.version, nil
}

type fakeRunner struct {
	*recorder
}

func (f *fakeRunner) Run(_ context.Context, cmd exec.Command) error {
	return f.record(cmd.Line("sudo"))
}

func (f *fakeRunner) Output(_ context.Context, cmd exec.Command) (string, error) {
	return "", f.record(cmd.Line("sudo"))
}

type fakeConfirm struct {
	answer    bool
	questions []string
}

func (f *fakeConfirm) Confirm(question string) bool {
	f.questions = append(f.questions, question)
	return f.answer
}

type harness struct {
	env      *Env
	rec      *recorder
	confirm  *fakeConfirm
	out      *bytes.Buffer
	waitRoot string
}

func newHarness(profile config.Profile, accept bool, fail ...string) *harness {
	rec := &recorder{fail: make(map[string]bool)}
	for _, f := range fail {
		rec.fail[f] = true
	}

	h := &harness{
		rec:     rec,
		confirm: &fakeConfirm{answer: accept},
		out:     &bytes.Buffer{},
	}

	h.env = &Env{
		Config:   config.New(profile),
		Packages: &fakePackages{recorder: rec, release: "41"},
		Sandbox:  &fakeSandbox{recorder: rec, available: true},
		Modules:  &fakeModules{recorder: rec, version: "565.77"},
		Runner:   &fakeRunner{recorder: rec},
		Confirm:  h.confirm,
		Out:      ui.NewPrinter(h.out),
		Log:      logger.Nop(),
		KernelRelease: func() (string, error) {
			return "6.11.4-301.fc41.x86_64", nil
		},
		WaitForFile: func(_ context.Context, root string, match watcher.MatchFunc, _ time.Duration) (string, error) {
			h.waitRoot = root
			if err := rec.record("wait " + root); err != nil {
				return "", err
			}
			if !match("nvidia.ko.xz") {
				return "", errors.New("matcher rejected module file")
			}
			return root + "/nvidia/nvidia.ko.xz", nil
		},
	}
	return h
}
