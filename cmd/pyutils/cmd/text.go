package cmd

import (
	"github.com/spf13/cobra"

	pyerrors "github.com/msto63/pyutils/core/errors"
	"github.com/msto63/pyutils/core/log"
	"github.com/msto63/pyutils/utils/stringx"
)

func newSplitCmd(a *app) *cobra.Command {
	var delim string

	cmd := &cobra.Command{
		Use:   "split <text>",
		Short: "Split text at every occurrence of a delimiter",
		Long: `Splits the text at every occurrence of a single-byte delimiter and
prints one element per line. Adjacent delimiters produce empty elements.

Examples:
  pyutils split "apple,banana,cherry"
  pyutils split --delim " " "Hello World Test"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(delim) != 1 {
				return pyerrors.InvalidInput(pyerrors.ModuleStringx, "Split", delim, "exactly one byte")
			}
			parts := stringx.Split(args[0], delim[0])
			a.logger.Debug("split", log.Int("parts", len(parts)))
			for _, p := range parts {
				if err := a.console.Print(p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delim, "delim", "d", ",", "single-byte delimiter")
	return cmd
}

func newJoinCmd(a *app) *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:   "join <parts...>",
		Short: "Join arguments with a separator",
		Example: `  pyutils join Hello World --sep " "
  pyutils join a b c`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.console.Print(stringx.Join(args, sep))
		},
	}

	cmd.Flags().StringVarP(&sep, "sep", "s", ",", "separator placed between parts")
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	var (
		chars string
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "strip <text>",
		Short: "Remove leading and/or trailing characters",
		Long: `Removes characters from the start and/or end of the text. Without
--chars the set from the [strip] section of the config file is used,
which defaults to space, tab, newline and carriage return.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := a.settings.Strip.Chars
			if cmd.Flags().Changed("chars") {
				set = chars
			}

			var result string
			switch mode {
			case "both":
				result = stringx.StripChars(args[0], set)
			case "left":
				result = stringx.LStripChars(args[0], set)
			case "right":
				result = stringx.RStripChars(args[0], set)
			default:
				return pyerrors.InvalidInput(pyerrors.ModuleStringx, "Strip", mode, "both, left or right")
			}
			return a.console.Print(result)
		},
	}

	cmd.Flags().StringVarP(&chars, "chars", "c", "", "characters to remove")
	cmd.Flags().StringVarP(&mode, "mode", "m", "both", "which side to strip: both, left, right")
	return cmd
}

func newReplaceCmd(a *app) *cobra.Command {
	var first bool

	cmd := &cobra.Command{
		Use:   "replace <text> <from> <to>",
		Short: "Replace occurrences of a substring",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.console.Print(stringx.Replace(args[0], args[1], args[2], !first))
		},
	}

	cmd.Flags().BoolVar(&first, "first", false, "replace only the first occurrence")
	return cmd
}

func newCaseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "ASCII case mapping",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "upper <text>",
			Short: "Map a-z to A-Z",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.console.Print(stringx.Upper(args[0]))
			},
		},
		&cobra.Command{
			Use:   "lower <text>",
			Short: "Map A-Z to a-z",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.console.Print(stringx.Lower(args[0]))
			},
		},
	)
	return cmd
}

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Report the ASCII character classes of the text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			checks := []struct {
				name   string
				result bool
			}{
				{"isdigit:", stringx.IsDigitAll(text)},
				{"isalpha:", stringx.IsAlphaAll(text)},
				{"isalnum:", stringx.IsAlnumAll(text)},
				{"isspace:", stringx.IsSpaceAll(text)},
			}
			for _, c := range checks {
				if err := a.console.Print(c.name, c.result); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
