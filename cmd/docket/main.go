// Package main is the entry point for the docket application.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/docket/internal/config"
	"github.com/joe/docket/internal/copier"
	"github.com/joe/docket/internal/engine"
	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/schema"
	"github.com/joe/docket/internal/tui"
	"github.com/joe/docket/pkg/filesystem"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

// Exit codes.
const (
	exitConfig     = 1
	exitWithErrors = 2
)

// job is one configured batch ready to run.
type job struct {
	opts tui.Options
	run  func(eng *engine.Engine) (events.BatchResult, error)
}

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitConfig)
	}

	os.Exit(run(cfg))
}

func run(cfg *config.Config) int {
	fsys, _, err := filesystem.CreateFileSystem(primaryPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitConfig
	}

	var filter copier.FileFilter
	if cfg.Include != "" {
		filter = copier.NewGlobFilter(cfg.Include)
	}

	eng := engine.New(fsys, cfg.Policy, filter)

	if cfg.LogFile != "" {
		if err := eng.EnableFileLogging(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			return exitConfig
		}

		defer eng.CloseLog()
	}

	j, err := newJob(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitConfig
	}

	runner := func(emitter events.Emitter) (events.BatchResult, error) {
		eng.SetEventEmitter(emitter)

		return j.run(eng)
	}

	var result events.BatchResult

	if !cfg.Plain && term.IsTerminal(int(os.Stdout.Fd())) {
		j.opts.Cancel = eng.Cancel
		result, err = tui.Run(j.opts, runner, tea.WithAltScreen())
	} else {
		stop := cancelOnInterrupt(eng)
		defer stop()

		fmt.Println(j.opts.Title)
		result, err = runner(tui.PlainEmitter{W: os.Stdout})
	}

	tui.PrintSummary(os.Stdout, result, j.opts.Success)

	return exitCode(result, err)
}

func newJob(cfg *config.Config) (job, error) {
	switch {
	case cfg.Structure != nil:
		return structureJob(cfg.Structure)
	case cfg.Bid != nil:
		return bidJob(cfg.Bid), nil
	case cfg.Detect != nil:
		return detectJob(cfg.Detect), nil
	default:
		return job{}, config.ErrNoCommand
	}
}

func structureJob(cmd *config.StructureCmd) (job, error) {
	tree := schema.ClientStructure()

	if cmd.Schema != "" {
		loaded, err := schema.LoadFile(cmd.Schema)
		if err != nil {
			return job{}, err
		}

		tree = loaded
	}

	return job{
		opts: tui.Options{
			Title:    "Docket · Estrutura do cliente",
			Subtitle: fmt.Sprintf("%s (%d pastas)", cmd.Root, tree.Count()),
			Success:  "Estrutura criada com sucesso!",
		},
		run: func(eng *engine.Engine) (events.BatchResult, error) {
			return eng.CreateStructure(cmd.Root, tree)
		},
	}, nil
}

func bidJob(cmd *config.BidCmd) job {
	req := engine.BidRequest{
		ParticipateDir: cmd.Base,
		Month:          cmd.Month,
		Name:           cmd.Name(),
		ModelsRoot:     cmd.ModelsRoot,
		TemplateRoot:   cmd.TemplateRoot,
		Subfolders:     cmd.Subfolders,
		Attachments:    cmd.Attach,
		AttachTo:       cmd.AttachTo,
	}

	return job{
		opts: tui.Options{
			Title:    "Docket · Nova licitação",
			Subtitle: fmt.Sprintf("%s · %s · %s", cmd.Base, cmd.Month, req.Name),
			Success:  "Licitação criada com sucesso!",
		},
		run: func(eng *engine.Engine) (events.BatchResult, error) {
			out, err := eng.CreateBid(req)

			return out.BatchResult, err
		},
	}
}

func detectJob(cmd *config.DetectCmd) job {
	return job{
		opts: tui.Options{
			Title:    "Docket · Detectar template",
			Subtitle: cmd.Base,
			Success:  "Template detectado com sucesso.",
		},
		run: func(eng *engine.Engine) (events.BatchResult, error) {
			_, result := eng.Detect(cmd.Base, cmd.ModelsRoot)

			return result, nil
		},
	}
}

// cancelOnInterrupt cancels the batch on the first interrupt. The handler is
// then removed, so a second interrupt kills the process as usual.
func cancelOnInterrupt(eng *engine.Engine) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	go func() {
		if _, ok := <-sigs; ok {
			signal.Stop(sigs)
			eng.Cancel()
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(sigs)
	}
}

func primaryPath(cfg *config.Config) string {
	switch {
	case cfg.Structure != nil:
		return cfg.Structure.Root
	case cfg.Bid != nil:
		return cfg.Bid.Base
	case cfg.Detect != nil:
		return cfg.Detect.Base
	default:
		return "."
	}
}

func exitCode(result events.BatchResult, err error) int {
	switch {
	case pkgerrors.IsConfiguration(err):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitConfig
	case errors.Is(err, tui.ErrInterrupted), errors.Is(err, engine.ErrCancelled):
		fmt.Fprintln(os.Stderr, "Interrompido.")

		return exitConfig
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return exitConfig
	case result.Outcome() == events.OutcomeErrors:
		return exitWithErrors
	default:
		return 0
	}
}
