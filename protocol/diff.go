package protocol

import (
	"github.com/datazip-inc/olake-syncform/types"
	"github.com/spf13/cobra"
)

type diffOutput struct {
	Changed            bool   `json:"changed"`
	Diff               string `json:"diff,omitempty"`
	InitialFingerprint uint64 `json:"initialFingerprint"`
	EditedFingerprint  uint64 `json:"editedFingerprint"`
}

// diffCmd reports whether an edited schema would ask for confirmation in edit mode
func diffCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "compare an edited schema against the original",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := loadSchema(opts.schemaPath)
			if err != nil {
				return err
			}
			edited, err := loadSchema(opts.editedSchemaPath)
			if err != nil {
				return err
			}

			initial := types.NormalizeSchema(schema)
			working := types.NormalizeSchema(edited)

			initialFingerprint, err := initial.Fingerprint()
			if err != nil {
				return err
			}
			editedFingerprint, err := working.Fingerprint()
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), diffOutput{
				Changed:            !initial.Equal(working),
				Diff:               initial.Diff(working),
				InitialFingerprint: initialFingerprint,
				EditedFingerprint:  editedFingerprint,
			})
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "", "", "(Required) Path to the original schema file")
	cmd.Flags().StringVarP(&opts.editedSchemaPath, "edited-schema", "", "", "(Required) Path to the edited schema file")
	return cmd
}
