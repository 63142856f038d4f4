package joymap

import (
	"fmt"

	"github.com/arthur-debert/joymap/internal/version"
	"github.com/arthur-debert/joymap/pkg/commands"
	"github.com/arthur-debert/joymap/pkg/commands/mappings"
	"github.com/arthur-debert/joymap/pkg/config"
	"github.com/arthur-debert/joymap/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		dryRun    bool
		outputDir string
		cfg       *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     "joymap <bindings.xml> <template.svg>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.LoadOptions{Overrides: flagOverrides(outputDir)})
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			cfg = loaded

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: verbosity,
				File:      cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Render(commands.RenderOptions{
				BindingsPath: args[0],
				TemplatePath: args[1],
				DryRun:       dryRun,
				Config:       cfg,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			out := cmd.OutOrStdout()
			if result.DryRun {
				fmt.Fprintln(out, formatBold(MsgDryRunNotice))
			}
			fmt.Fprintln(out, formatSuccess(result.Message))
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Render flags
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	_ = rootCmd.MarkFlagDirname("output-dir")

	// Disable automatic help command, -h/--help still works
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newMappingsCmd(func() *config.Config { return cfg }))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// flagOverrides maps set flags to the config keys they replace.
func flagOverrides(outputDir string) map[string]interface{} {
	overrides := map[string]interface{}{}
	if outputDir != "" {
		overrides["output.dir"] = outputDir
	}
	return overrides
}

func newMappingsCmd(getConfig func() *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "mappings <bindings.xml>",
		Short:   MsgMappingsShort,
		Long:    MsgMappingsLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Mappings(commands.MappingsOptions{
				BindingsPath: args[0],
				Format:       format,
				Config:       getConfig(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrMappings, err)
			}

			if len(result.Mapping) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), MsgNoTokensFormat, args[0])
			}
			_, err = cmd.OutOrStdout().Write(result.Encoded)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", mappings.FormatTOML, MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return mappings.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
