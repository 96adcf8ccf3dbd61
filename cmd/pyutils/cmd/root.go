package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/pyutils/core/config"
	"github.com/msto63/pyutils/core/log"
	"github.com/msto63/pyutils/utils/consolex"
	"github.com/msto63/pyutils/utils/filex"
)

// errAbsent signals a command whose result is absent; it sets a non-zero
// exit status without an error message.
var errAbsent = errors.New("absent")

// app carries the state shared by all commands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	settings   *config.Settings
	configPath string
	logger     *log.Logger
	console    *consolex.Console
}

// NewRootCommand builds the complete command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pyutils",
		Short: "Scripting-style string, sequence and I/O helpers",
		Long: `pyutils exposes the utility packages on the command line.

Commands:
  demo      - walk through every helper with sample data
  split     - split text at a single-byte delimiter
  join      - join arguments with a separator
  strip     - remove leading/trailing characters
  replace   - substitute substrings
  case      - ASCII upper/lower case mapping
  classify  - ASCII character class predicates
  parse     - strict int/double/bool parsing
  range     - print an integer range`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./pyutils.toml or user config dir)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json, console, logfmt")

	root.AddCommand(
		newDemoCmd(a),
		newSplitCmd(a),
		newJoinCmd(a),
		newStripCmd(a),
		newReplaceCmd(a),
		newCaseCmd(a),
		newClassifyCmd(a),
		newParseCmd(a),
		newRangeCmd(a),
		newVersionCmd(a),
	)

	return root
}

// Execute runs the command line tool
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !errors.Is(err, errAbsent) {
		printError(err)
	}
	return err
}

// setup loads the settings and wires logger and console for the invocation
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.settings, err = config.Load(a.cfgFile)
		a.configPath = a.cfgFile
	} else {
		a.settings, a.configPath, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(a.settings.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.LevelDebug
	}

	formatName := a.settings.Log.Format
	if a.logFormat != "" {
		formatName = a.logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return err
	}

	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "pyutils",
	}).WithCorrelationID(uuid.NewString())
	log.SetDefault(a.logger)
	filex.SetLogger(a.logger)

	a.console = consolex.NewWithOptions(cmd.OutOrStdout(), cmd.InOrStdin(), a.settings.ConsoleOptions())

	a.logger.Debug("command started", log.Fields{
		"command": cmd.CommandPath(),
		"config":  a.configPath,
	})
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
