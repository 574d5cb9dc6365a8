package cio

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/cio/internal/help"
	"github.com/arthur-debert/cio/internal/vars"
	"github.com/arthur-debert/cio/internal/version"
	"github.com/arthur-debert/cio/pkg/cobrax/topics"
	"github.com/arthur-debert/cio/pkg/config"
	"github.com/arthur-debert/cio/pkg/logging"
	"github.com/arthur-debert/cio/pkg/render"
	"github.com/arthur-debert/cio/pkg/resolver"
	"github.com/arthur-debert/cio/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	verbosity  int
	color      string
	configPath string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "cio",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	tm, err := topics.New(help.Topics(), topics.Options{
		Renderer: topics.NewGlamourRenderer(render.DetectColor(os.Stdout)),
	})
	if err != nil {
		// The topics are embedded, so this only fails on a broken build
		panic(err)
	}

	rootCmd.AddCommand(newPrintCmd(a))
	rootCmd.AddCommand(newStylesCmd(a))
	rootCmd.AddCommand(newSyntaxCmd(tm))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	tm.Install(rootCmd)

	return rootCmd
}

// setup loads the configuration and starts logging. Flags override the
// configuration file and environment.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	if a.color != "" {
		overrides["output.color"] = a.color
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if cfg.Log.Verbosity > verbosity {
		verbosity = cfg.Log.Verbosity
	}
	logging.SetupLogger(verbosity)
	logging.LogCommand(cmd.Name(), args)
	log.Debug().Str("config", cfg.Source).Msg("Configuration loaded")
	return nil
}

// colorFor decides whether w gets ANSI sequences. Writers that are not
// files only get color when it is forced.
func (a *app) colorFor(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		on, err := a.cfg.ColorEnabled(f)
		return err == nil && on
	}
	return a.cfg.Output.Color == render.ColorAlways
}

func (a *app) renderer(w io.Writer, values map[string]any) *render.Renderer {
	opts := append(a.cfg.RenderOptions(), render.WithLogger(logging.GetLogger("render")))
	return render.New(resolver.Map(values), render.NewWriterSink(w, a.colorFor(w)), opts...)
}

func newPrintCmd(a *app) *cobra.Command {
	var (
		assignments []string
		varsFile    string
		noNewline   bool
	)

	cmd := &cobra.Command{
		Use:     "print TEMPLATE",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cmd.print"), "print")
			defer done()

			var base map[string]any
			if varsFile != "" {
				loaded, err := vars.LoadFile(varsFile)
				if err != nil {
					return err
				}
				base = loaded
			}
			values, err := vars.Merge(base, assignments)
			if err != nil {
				return err
			}

			r := a.renderer(cmd.OutOrStdout(), values)
			if noNewline {
				return r.PrintInline(args[0])
			}
			return r.Print(args[0])
		},
	}

	cmd.Flags().StringArrayVar(&assignments, "var", nil, MsgFlagVar)
	cmd.Flags().StringVar(&varsFile, "vars", "", MsgFlagVars)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	return cmd
}

func newStylesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.renderer(cmd.OutOrStdout(), nil)
			sections := []struct {
				heading string
				names   []string
			}{
				{MsgColorsHeading, style.ColorNames()},
				{MsgModifiersHeading, style.ModifierNames()},
			}
			for i, s := range sections {
				if i > 0 {
					if err := r.Print(""); err != nil {
						return err
					}
				}
				if err := r.Print(s.heading); err != nil {
					return err
				}
				for _, name := range s.names {
					if err := r.Print(fmt.Sprintf(MsgStyleItem, name, name)); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

func newSyntaxCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: MsgSyntaxShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tm.WriteTopic(cmd.OutOrStdout(), "syntax")
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := io.WriteString(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			out, err := a.cfg.TOML()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.cfg.Source != "" {
				_, _ = fmt.Fprintf(w, MsgConfigSource, a.cfg.Source)
			}
			_, err = w.Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
