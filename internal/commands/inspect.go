package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SrRenks/febraban-code/internal/banks"
	"github.com/SrRenks/febraban-code/internal/febraban"
)

func newInspectCommand() *cobra.Command {
	var output string
	var banksPath string

	cmd := &cobra.Command{
		Use:   "inspect <code>",
		Short: "Decode a payment code and print every field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(banksPath)
			if err != nil {
				return err
			}
			return runInspect(cmd, args[0], output, registry)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or yaml")
	cmd.Flags().StringVar(&banksPath, "banks", "", "CSV file with extra bank registry entries")

	return cmd
}

func loadRegistry(path string) (*banks.Service, error) {
	if path == "" {
		return banks.NewService(banks.DefaultRegistry()), nil
	}
	return banks.Load(path)
}

// report is the printable form of a decoded code.
type report struct {
	Kind         string        `yaml:"kind"`
	Bank         string        `yaml:"bank"`
	BankName     string        `yaml:"bank_name,omitempty"`
	Currency     string        `yaml:"currency"`
	CheckDigit   int           `yaml:"check_digit"`
	Expiry       string        `yaml:"expiry"`
	ExpiryFactor string        `yaml:"expiry_factor"`
	Amount       string        `yaml:"amount"`
	ValueFactor  string        `yaml:"value_factor"`
	Fields       []reportField `yaml:"fields"`
	Bar          string        `yaml:"bar"`
	Line         string        `yaml:"line"`
	Formatted    string        `yaml:"formatted_line"`
	Valid        bool          `yaml:"valid"`
}

type reportField struct {
	Info  string `yaml:"info"`
	Check int    `yaml:"check_digit"`
}

func buildReport(code *febraban.Code, registry *banks.Service) report {
	info := code.Info()
	rep := report{
		Kind:         string(info.Kind),
		Bank:         info.Bank,
		Currency:     info.Currency,
		CheckDigit:   info.CheckDigit,
		Expiry:       info.Expiry.Format("2006-01-02"),
		ExpiryFactor: info.ExpiryFactor,
		Amount:       info.Amount.StringFixed(2),
		ValueFactor:  info.ValueFactor,
		Fields: []reportField{
			{Info: info.Field1.Info, Check: info.Field1.Check},
			{Info: info.Field2.Info, Check: info.Field2.Check},
			{Info: info.Field3.Info, Check: info.Field3.Check},
		},
		Bar:       code.Bar(),
		Line:      code.Line(false),
		Formatted: code.Line(true),
		Valid:     code.Validate(),
	}
	if bank, ok := registry.Get(info.Bank); ok {
		rep.BankName = bank.Name
	}
	return rep
}

func runInspect(cmd *cobra.Command, raw, output string, registry *banks.Service) error {
	code, err := febraban.Parse(raw)
	if err != nil {
		return err
	}

	rep := buildReport(code, registry)
	switch output {
	case "text":
		printReport(cmd.OutOrStdout(), rep)
	case "yaml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	return nil
}

func printReport(w io.Writer, rep report) {
	bank := rep.Bank
	if rep.BankName != "" {
		bank = fmt.Sprintf("%s (%s)", rep.Bank, rep.BankName)
	}
	currency := rep.Currency
	if currency == "9" {
		currency = "9 (BRL)"
	}

	fmt.Fprintf(w, "Kind:         %s\n", rep.Kind)
	fmt.Fprintf(w, "Bank:         %s\n", bank)
	fmt.Fprintf(w, "Currency:     %s\n", currency)
	fmt.Fprintf(w, "Check digit:  %d\n", rep.CheckDigit)
	fmt.Fprintf(w, "Expiry:       %s (factor %s)\n", rep.Expiry, rep.ExpiryFactor)
	fmt.Fprintf(w, "Amount:       %s (factor %s)\n", rep.Amount, rep.ValueFactor)
	for i, f := range rep.Fields {
		fmt.Fprintf(w, "Field %d:      %s (check %d)\n", i+1, f.Info, f.Check)
	}
	fmt.Fprintf(w, "Bar:          %s\n", rep.Bar)
	fmt.Fprintf(w, "Line:         %s\n", rep.Line)
	fmt.Fprintf(w, "Formatted:    %s\n", rep.Formatted)
	fmt.Fprintf(w, "Valid:        %t\n", rep.Valid)
}
