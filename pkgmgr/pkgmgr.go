// Package pkgmgr wraps the external package tools behind small capability
// interfaces. Every method shells out once and reports only the exit
// status; callers decide what a failure means.
package pkgmgr

import "context"

type PackageManager interface {
	Install(ctx context.Context, pkgs ...string) error
	Remove(ctx context.Context, pkgs ...string) error
	Autoremove(ctx context.Context) error
	Upgrade(ctx context.Context, args ...string) error
	Swap(ctx context.Context, from, to string) error
	SetOption(ctx context.Context, option string) error
	ReleaseVersion(ctx context.Context) (string, error)
}

type SandboxManager interface {
	Available() bool
	AddRemote(ctx context.Context, name, url string) error
	Install(ctx context.Context, remote, app string) error
}

type KernelModules interface {
	GenerateSigningKey(ctx context.Context) error
	EnrollKey(ctx context.Context, cert string) error
	ModuleVersion(ctx context.Context, module string) (string, error)
}
