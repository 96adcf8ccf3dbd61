package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/pyutils/core/log"
	"github.com/msto63/pyutils/utils/parsex"
)

func newParseCmd(a *app) *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Strict parsing of numbers and booleans",
		Long: `Parses the text completely or not at all. The parsed value is printed;
when the text is not a valid literal "absent" is printed and the exit
status is non-zero.

Examples:
  pyutils parse int 42
  pyutils parse int --base 16 0xff
  pyutils parse double 3.14
  pyutils parse bool yes`,
	}

	intCmd := &cobra.Command{
		Use:   "int <text>",
		Short: "Parse a signed 64-bit integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := parsex.ToInt(args[0], base)
			return a.printParsed("int", args[0], v, ok)
		},
	}
	intCmd.Flags().IntVarP(&base, "base", "b", parsex.DefaultBase, "numeric base (0 detects from prefix, 2..36)")

	cmd.AddCommand(
		intCmd,
		&cobra.Command{
			Use:   "double <text>",
			Short: "Parse a floating point number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, ok := parsex.ToDouble(args[0])
				return a.printParsed("double", args[0], v, ok)
			},
		},
		&cobra.Command{
			Use:   "bool <text>",
			Short: "Parse true/false, yes/no, y/n or 1/0",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, ok := parsex.ToBool(args[0])
				return a.printParsed("bool", args[0], v, ok)
			},
		},
	)
	return cmd
}

func (a *app) printParsed(kind, text string, value any, ok bool) error {
	if !ok {
		a.logger.Debug("parse absent", log.Fields{"kind": kind, "input": text})
		if err := a.console.Print("absent"); err != nil {
			return err
		}
		return errAbsent
	}
	return a.console.Print(value)
}
