package cmd

import (
	"github.com/spf13/cobra"

	pyerrors "github.com/msto63/pyutils/core/errors"
	"github.com/msto63/pyutils/utils/parsex"
	"github.com/msto63/pyutils/utils/seqx"
)

func newRangeCmd(a *app) *cobra.Command {
	var (
		reverse bool
		count   bool
	)

	cmd := &cobra.Command{
		Use:   "range <stop> | <start> <stop> [step]",
		Short: "Print an integer range",
		Long: `Prints the values start, start+step, ... up to but excluding stop on
one line. The defaults are start 0 and step 1; a negative step counts down.

Examples:
  pyutils range 5
  pyutils range 2 10 3
  pyutils range --reverse -- 10 0 -3`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds := make([]int64, len(args))
			for i, arg := range args {
				v, ok := parsex.ToInt(arg)
				if !ok {
					return pyerrors.InvalidInput(pyerrors.ModuleSeqx, "Range", arg, "integer")
				}
				bounds[i] = v
			}

			var r seqx.Range
			switch len(bounds) {
			case 1:
				r = seqx.NewRange(bounds[0])
			case 2:
				r = seqx.NewRangeFrom(bounds[0], bounds[1])
			default:
				if bounds[2] == 0 {
					return pyerrors.InvalidInput(pyerrors.ModuleSeqx, "Range", args[2], "non-zero step")
				}
				r = seqx.NewRangeStep(bounds[0], bounds[1], bounds[2])
			}

			if count {
				return a.console.Print(r.Len())
			}

			values := r.All()
			if reverse {
				values = r.Backward()
			}
			return a.console.Print(seqx.Collect(seqx.Map(values, func(v int64) any { return v }))...)
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "print from last to first")
	cmd.Flags().BoolVar(&count, "len", false, "print only the number of values")
	return cmd
}
