package protocol

import (
	"fmt"

	"github.com/datazip-inc/olake-syncform/types"
	"github.com/spf13/cobra"
)

func normalizeCmd(opts *options) *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "print a schema with sync mode defaults applied",
		Example: `
syncform normalize --schema path/to/schema.json
syncform normalize --schema path/to/schema.yaml --validate
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := loadSchema(opts.schemaPath)
			if err != nil {
				return err
			}

			normalized := types.NormalizeSchema(schema)
			if validate {
				if err := normalized.Validate(); err != nil {
					return fmt.Errorf("schema[%s] is invalid: %s", opts.schemaPath, err)
				}
			}

			return printJSON(cmd.OutOrStdout(), normalized)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "", "", "(Required) Path to the schema file")
	cmd.Flags().BoolVarP(&validate, "validate", "", false, "(Optional) Fail when a stream uses an unsupported sync mode")
	return cmd
}
