package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SrRenks/febraban-code/internal/febraban"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Check every verification digit of a payment code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, raw string) error {
	code, err := febraban.Parse(raw)
	if err != nil {
		return err
	}
	if !code.Validate() {
		return errors.New("check digit verification failed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid %s code\n", code.Kind())
	return nil
}
