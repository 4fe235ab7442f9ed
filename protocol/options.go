package protocol

import (
	"github.com/datazip-inc/olake-syncform/frequency"
	"github.com/datazip-inc/olake-syncform/i18n"
	"github.com/spf13/cobra"
)

type optionOutput struct {
	frequency.Item
	IntervalSeconds int64 `json:"intervalSeconds"`
}

// optionsCmd prints the frequency dropdown entries
func optionsCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "list sync frequency options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			output := make([]optionOutput, 0, len(frequency.Options))
			for _, option := range frequency.Options {
				interval, err := option.Interval()
				if err != nil {
					return err
				}
				output = append(output, optionOutput{
					Item:            option.Item(i18n.Default()),
					IntervalSeconds: int64(interval.Seconds()),
				})
			}

			return printJSON(cmd.OutOrStdout(), output)
		},
	}
}
