// Package build provides the build command: preprocess and/or render.
package build

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdpress/mdp/internal/config"
	"github.com/mdpress/mdp/internal/render"
	"github.com/mdpress/mdp/internal/view"
	"github.com/mdpress/mdp/internal/watch"
	"github.com/mdpress/mdp/pkg/preprocess"
)

type buildOptions struct {
	name            string
	preprocessOnly  bool
	renderOnly      bool
	continueOnError bool
	embedErrors     bool
	watchMode       bool
	configPath      string
	verbose         bool
	noColor         bool
}

// NewCmdBuild creates the build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [name]",
		Short: "Preprocess and render Markdown documents",
		Long: `Build the project in two steps.

Step 1 (preprocess): expand directives in src_dir/*.md into preprocess_dir.
Step 2 (render): convert preprocess_dir/*.md to HTML in build_dir.

The optional name argument restricts the build to a single file,
given without its .md extension.`,
		Example: `  # Build everything
  mdp build

  # Build a single document
  mdp build chapter-one

  # Preprocess only, keeping going on directive errors
  mdp build --preprocess-only --continue-on-error

  # Rebuild on every change to src_dir
  mdp build --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.name = args[0]
			}
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.verbose, _ = cmd.Flags().GetBool("verbose")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runBuild(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.preprocessOnly, "preprocess-only", "p", false, "Run the preprocess step only")
	cmd.Flags().BoolVarP(&opts.renderOnly, "render-only", "r", false, "Run the render step only")
	cmd.Flags().BoolVarP(&opts.continueOnError, "continue-on-error", "c", false, "Continue after directive errors where possible")
	cmd.Flags().BoolVarP(&opts.embedErrors, "embed-errors", "e", false, "Embed directive errors into the enhanced Markdown output")
	cmd.Flags().BoolVarP(&opts.watchMode, "watch", "w", false, "Watch for changes and rebuild")
	cmd.MarkFlagsMutuallyExclusive("preprocess-only", "render-only")

	return cmd
}

func runBuild(ctx context.Context, opts *buildOptions) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mdp init' to configure)", err)
	}

	rep := view.NewReporter(opts.verbose, opts.noColor)

	if opts.watchMode {
		return runWatch(ctx, cfg, rep, opts)
	}
	return runOnce(cfg, rep, opts)
}

// runOnce executes the configured steps a single time, returning an error
// when a step fails or when preprocessing finished with errors.
func runOnce(cfg *config.Config, rep *view.Reporter, opts *buildOptions) error {
	errCount, err := runSteps(cfg, rep, opts)
	if err != nil {
		return err
	}
	if errCount > 0 {
		return fmt.Errorf("preprocessing finished with %d error(s)", errCount)
	}
	return nil
}

// runSteps performs preprocess and/or render per the options. The directive
// registry is rebuilt from the config source on every call, so watch-mode
// rebuilds pick up directive changes.
func runSteps(cfg *config.Config, rep *view.Reporter, opts *buildOptions) (int, error) {
	errCount := 0

	if !opts.renderOnly {
		reg := &preprocess.Registry{}
		if _, err := os.Stat(cfg.Directives); err == nil {
			loaded, err := preprocess.LoadDirectives(cfg.Directives)
			if err != nil {
				return 0, err
			}
			reg = loaded
		}

		pipe := &preprocess.Pipeline{
			Registry: reg,
			Options: preprocess.Options{
				ContinueOnError: opts.continueOnError,
				EmbedErrors:     opts.embedErrors,
			},
			Report: func(err *preprocess.LineError) {
				rep.Errorf("[preprocess]", "%s", err.Error())
			},
			Logf: func(format string, args ...any) {
				rep.Infof("[preprocess]", format, args...)
			},
		}

		var (
			n   int
			err error
		)
		if opts.name != "" {
			src := filepath.Join(cfg.SrcDir, opts.name+".md")
			dst := filepath.Join(cfg.PreprocessDir, opts.name+".md")
			n, err = pipe.File(src, dst)
		} else {
			n, err = pipe.Dir(cfg.SrcDir, cfg.PreprocessDir)
		}
		errCount += n
		if err != nil {
			return errCount, err
		}
	}

	if !opts.preprocessOnly {
		files, err := renderTargets(cfg, opts.name)
		if err != nil {
			return errCount, err
		}
		for _, md := range files {
			out, err := render.File(md, cfg.BuildDir, cfg.CSS, cfg.DevJS, cfg.Template)
			if err != nil {
				return errCount, err
			}
			rep.Infof("[build]", "%s -> %s", md, out)
		}
	}

	return errCount, nil
}

// renderTargets lists the preprocessed files the render step should consume.
func renderTargets(cfg *config.Config, name string) ([]string, error) {
	if name != "" {
		return []string{filepath.Join(cfg.PreprocessDir, name+".md")}, nil
	}
	return preprocess.ListMarkdownFiles(cfg.PreprocessDir)
}

// runWatch rebuilds on changes. The watched directory depends on the mode:
// render-only watches preprocess_dir, everything else watches src_dir. A
// build failure stops the watcher unless --continue-on-error is set.
func runWatch(ctx context.Context, cfg *config.Config, rep *view.Reporter, opts *buildOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// Initial build before watching; failures surface immediately.
	if err := runOnce(cfg, rep, opts); err != nil {
		if !opts.continueOnError {
			return err
		}
		rep.Errorf("[watch]", "%v", err)
	}

	watchDir := cfg.SrcDir
	if opts.renderOnly {
		watchDir = cfg.PreprocessDir
	}

	w, err := watch.New(watch.Config{
		Dir:      watchDir,
		Patterns: []string{"*.md"},
		OnChange: func(ctx context.Context, changed []string) error {
			rep.Infof("[watch]", "changed: %v", changed)
			if err := runOnce(cfg, rep, opts); err != nil {
				if !opts.continueOnError {
					return err
				}
				rep.Errorf("[watch]", "%v", err)
			}
			return nil
		},
		Errf: func(format string, args ...any) {
			rep.Warnf("[watch]", format, args...)
		},
	})
	if err != nil {
		return err
	}

	rep.Printf("[watch]", "watching %s for .md changes...", watchDir)
	return w.Run(ctx)
}
