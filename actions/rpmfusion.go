package actions

import (
	"context"
	"strings"

	"github.com/vcnkl/provision/batch"
	"github.com/vcnkl/provision/config"
	"github.com/vcnkl/provision/models"
)

type RPMFusionAction struct {
	env *Env
}

func NewRPMFusionAction(env *Env) *RPMFusionAction {
	return &RPMFusionAction{env: env}
}

// Execute is best-effort: later steps still run after an earlier failure
// and nothing is rolled back.
func (a *RPMFusionAction) Execute(ctx context.Context) (*models.Summary, error) {
	cfg := a.env.Config.RPMFusion()

	a.env.Out.Title("Installing RPM Fusion repositories")
	if !a.env.Confirm.Confirm("Enable the RPM Fusion free and nonfree repositories?") {
		a.env.Out.Info("Skipping RPM Fusion installation")
		return nil, nil
	}

	steps := []models.WorkItem{
		batch.Step("install release packages", func(ctx context.Context) error {
			version, err := a.env.Packages.ReleaseVersion(ctx)
			if err != nil {
				return err
			}
			return a.env.Packages.Install(ctx, releaseURLs(cfg.ReleaseURLs, version)...)
		}),
		batch.Step("enable "+cfg.OpenH264Repo, func(ctx context.Context) error {
			return a.env.Packages.SetOption(ctx, cfg.OpenH264Repo+".enabled=1")
		}),
		batch.Step("swap "+cfg.SwapFrom+" for "+cfg.SwapTo, func(ctx context.Context) error {
			return a.env.Packages.Swap(ctx, cfg.SwapFrom, cfg.SwapTo)
		}),
		batch.Step("update "+cfg.MultimediaGroup, func(ctx context.Context) error {
			args := []string{cfg.MultimediaGroup, "--setopt=install_weak_deps=False"}
			for _, pkg := range cfg.Exclude {
				args = append(args, "--exclude="+pkg)
			}
			return a.env.Packages.Upgrade(ctx, args...)
		}),
	}

	summary := a.env.run(ctx, "rpmfusion", models.KindEnable, steps)
	a.env.Out.Summary("Install RPM Fusion", summary)
	return summary, nil
}

func releaseURLs(templates []string, version string) []string {
	urls := make([]string, len(templates))
	for i, t := range templates {
		urls[i] = strings.ReplaceAll(t, config.ReleasePlaceholder, version)
	}
	return urls
}
