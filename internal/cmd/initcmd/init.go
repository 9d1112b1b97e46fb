// Package initcmd provides the init command for mdp.
package initcmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mdpress/mdp/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		srcDir   string
		buildDir string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdp project configuration",
		Long: `Initialize an mdp project.

This command guides you through setting up the source and output
directories, the directive config, and the HTML shell template.
The configuration is saved to ./mdp.yml.`,
		Example: `  # Interactive setup
  mdp init

  # Pre-populate the source directory
  mdp init --src-dir docs`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(srcDir, buildDir)
		},
	}

	cmd.Flags().StringVar(&srcDir, "src-dir", "", "Source directory containing .md files")
	cmd.Flags().StringVar(&buildDir, "build-dir", "", "Output directory for rendered HTML")

	return cmd
}

func runInit(prefillSrc, prefillBuild string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	if prefillSrc != "" {
		cfg.SrcDir = prefillSrc
	}
	if prefillBuild != "" {
		cfg.BuildDir = prefillBuild
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Source directory").
				Description("Directory containing your .md files").
				Placeholder("src").
				Value(&cfg.SrcDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("source directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Build directory").
				Description("Output directory for rendered HTML").
				Placeholder("tmp/step-2-resulting-html").
				Value(&cfg.BuildDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("build directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Title("Directive config").
				Description("Line-oriented directive definitions").
				Placeholder("tools/preprocess.conf").
				Value(&cfg.Directives),

			huh.NewInput().
				Title("HTML template").
				Description("Document shell with {{title}}, {{css}}, {{dev_js}}, {{body}}").
				Placeholder("tools/templates/page.html").
				Value(&cfg.Template),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Configuration saved to %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Printf("  mdp build           # preprocess and render %s/*.md\n", cfg.SrcDir)
	fmt.Println("  mdp build --watch   # rebuild on changes")
	return nil
}
