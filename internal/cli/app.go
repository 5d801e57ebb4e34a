// Package cli wires the cobra command surface to the operation engine.
package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"repodeck.dev/repodeck/internal/config"
	"repodeck.dev/repodeck/internal/engine"
	rderrors "repodeck.dev/repodeck/internal/errors"
	"repodeck.dev/repodeck/internal/output"
)

// errFanOutFailed signals that at least one repository in a fan-out run
// failed; per-repo errors were already printed.
var errFanOutFailed = errors.New("one or more repositories failed")

// app holds the per-invocation runtime shared by all commands.
type app struct {
	cfg        *config.Config
	splog      *output.Splog
	dispatcher *engine.Dispatcher
}

func newApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:   cfg,
		splog: output.NewSplog(),
		dispatcher: engine.New(engine.Options{
			Workers:          cfg.Workers(),
			ProgressInterval: cfg.ProgressInterval(),
		}),
	}, nil
}

func (a *app) close() {
	a.dispatcher.Close()
}

// targetRepo resolves the repository a command operates on: --repo when given,
// otherwise the current directory.
func (a *app) targetRepo(cmd *cobra.Command) (string, error) {
	repo, _ := cmd.Flags().GetString("repo")
	if repo != "" {
		return repo, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// fanTargets resolves the repositories a read command fans out over: the whole
// roster with --all, otherwise just the target repo.
func (a *app) fanTargets(cmd *cobra.Command) ([]string, error) {
	all, _ := cmd.Flags().GetBool("all")
	if all {
		repos := a.cfg.Repos()
		if len(repos) == 0 {
			return nil, fmt.Errorf("no repositories registered; use 'repodeck repos add'")
		}
		return repos, nil
	}
	repo, err := a.targetRepo(cmd)
	if err != nil {
		return nil, err
	}
	return []string{repo}, nil
}

// exec submits one request and blocks until its terminal outcome. Progress
// lines go to the log as they arrive.
func (a *app) exec(req *engine.Request) (engine.Result, error) {
	done := make(chan struct{})
	var result engine.Result
	var failure *engine.Failure

	req.OnResult = func(r engine.Result) {
		result = r
		close(done)
	}
	req.OnFailure = func(f engine.Failure) {
		failure = &f
		close(done)
	}
	if req.OnProgress == nil {
		req.OnProgress = func(line string) {
			a.splog.Info("  %s", output.Dim(line))
		}
	}

	if err := a.dispatcher.Submit(req); err != nil {
		return nil, err
	}
	<-done

	if failure != nil {
		a.remediate(failure)
		return nil, failure.Err
	}
	return result, nil
}

// repoOutcome pairs a repository with its terminal outcome for fan-out runs.
type repoOutcome struct {
	Repo    string
	Result  engine.Result
	Failure *engine.Failure
}

// execAll fans one request shape out over several repositories through the
// shared pool and waits for every terminal outcome. Order follows repos, not
// completion.
func (a *app) execAll(repos []string, build func(repo string) *engine.Request) []repoOutcome {
	outcomes := make([]repoOutcome, len(repos))
	var wg sync.WaitGroup

	for i, repo := range repos {
		outcomes[i].Repo = repo
		req := build(repo)

		wg.Add(1)
		idx := i
		req.OnResult = func(r engine.Result) {
			outcomes[idx].Result = r
			wg.Done()
		}
		req.OnFailure = func(f engine.Failure) {
			outcomes[idx].Failure = &f
			wg.Done()
		}

		if err := a.dispatcher.Submit(req); err != nil {
			outcomes[idx].Failure = &engine.Failure{
				Kind: req.Kind,
				Err:  err,
				Code: rderrors.Classify(err),
			}
			wg.Done()
		}
	}

	wg.Wait()
	return outcomes
}

// remediate prints the guided next step for the two failure categories that
// have one.
func (a *app) remediate(f *engine.Failure) {
	switch f.Code {
	case rderrors.KindCheckoutConflict:
		a.splog.Warn("switching branches would overwrite local changes")
		a.splog.Tip("commit, stash, or discard your changes before switching")
	case rderrors.KindNoUpstreamBranch:
		a.splog.Warn("the current branch has no upstream branch")
		a.splog.Tip("run 'repodeck push --set-upstream' to push and set it")
	}
}
