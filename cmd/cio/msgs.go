package cio

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render styled text templates to the terminal"
	MsgPrintShort      = "Render a template"
	MsgStylesShort     = "List the style names, each shown in its own style"
	MsgSyntaxShort     = "Show the template language guide"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgColorsHeading    = "@(bold)Colors"
	MsgModifiersHeading = "@(bold)Modifiers"
	MsgStyleItem        = "  @(%s)%s"
	MsgConfigSource     = "# loaded from %s\n"
	MsgVersionFormat    = "cio version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrNoCommand  = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor     = "Color output: auto, always or never (default from config)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/cio/config.toml)"
	MsgFlagVar       = "Set a variable, name=value (repeatable)"
	MsgFlagVars      = "Load variables from a .toml, .yaml, .json or .xml file"
	MsgFlagNoNewline = "Do not print a trailing newline"
	MsgFlagDefaults  = "Print the built-in default configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimRight(msgPrintExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
