package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SrRenks/febraban-code/internal/febraban"
	"github.com/SrRenks/febraban-code/internal/model"
)

func newConvertCommand() *cobra.Command {
	var to string
	var formatted bool

	cmd := &cobra.Command{
		Use:   "convert <code>",
		Short: "Re-encode a payment code in its bar or line form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], to, formatted)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target encoding: bar or line (default: the opposite form)")
	cmd.Flags().BoolVar(&formatted, "formatted", false, "insert separators in line output")

	return cmd
}

func runConvert(cmd *cobra.Command, raw, to string, formatted bool) error {
	code, err := febraban.Parse(raw)
	if err != nil {
		return err
	}

	target := model.Kind(to)
	if to == "" {
		target = model.KindLine
		if code.Kind() == model.KindLine {
			target = model.KindBar
		}
	}

	switch target {
	case model.KindBar:
		fmt.Fprintln(cmd.OutOrStdout(), code.Bar())
	case model.KindLine:
		fmt.Fprintln(cmd.OutOrStdout(), code.Line(formatted))
	default:
		return fmt.Errorf("unknown target encoding %q", to)
	}
	return nil
}
