package protocol

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/form"
	"github.com/datazip-inc/olake-syncform/types"
	"github.com/datazip-inc/olake-syncform/utils"
	"github.com/datazip-inc/olake-syncform/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type submitOutput struct {
	Outcome    string           `json:"outcome"`
	Submission *form.Submission `json:"submission,omitempty"`
	View       form.View        `json:"view"`
}

func submitCmd(opts *options) *cobra.Command {
	var (
		frequencyValue   string
		initialFrequency string
		editMode         bool
		confirm          bool
		syncModes        []string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "fill in and submit the frequency form",
		Long:  `Submit loads a schema, applies the given frequency and stream edits and submits the form. In edit mode a changed schema needs --confirm.`,
		Example: `
// New connection:
syncform submit --schema path/to/schema.json --frequency 60m

// Editing an existing connection:
syncform submit --schema path/to/schema.json --initial-frequency 60m --edit --sync-mode public.users=incremental --confirm
`,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if !editMode && confirm {
				return fmt.Errorf("--confirm is only valid together with --edit")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := loadSchema(opts.schemaPath)
			if err != nil {
				return err
			}

			var submitted *form.Submission
			f, err := form.New(form.Props{
				Schema:         schema,
				FrequencyValue: initialFrequency,
				IsEditMode:     editMode,
				OnSubmit: func(_ context.Context, values form.Submission) error {
					submitted = &values
					return saveSubmission(opts.outputPath, values)
				},
			})
			if err != nil {
				return err
			}

			if err := editForm(f, frequencyValue, opts.editedSchemaPath, syncModes); err != nil {
				return err
			}

			outcome, err := f.Submit(cmd.Context())
			if err != nil {
				return err
			}

			if outcome == form.ConfirmationRequired {
				if !confirm {
					logger.Warn("Schema changed; rerun with --confirm to save the changes")
					return printJSON(cmd.OutOrStdout(), submitOutput{Outcome: outcome.String(), View: f.View()})
				}
				if err := f.ConfirmModal(cmd.Context()); err != nil {
					return err
				}
				outcome = form.Submitted
			}

			return printJSON(cmd.OutOrStdout(), submitOutput{
				Outcome:    outcome.String(),
				Submission: submitted,
				View:       f.View(),
			})
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "", "", "(Required) Path to the schema file")
	cmd.Flags().StringVarP(&opts.editedSchemaPath, "edited-schema", "", "", "(Optional) Path to the schema as changed in the schema editor")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "", "", "(Optional) Path to write the submitted values, defaults to CONFIG_FOLDER/connection.json")
	cmd.Flags().StringVarP(&frequencyValue, "frequency", "", "", "(Optional) Frequency to select")
	cmd.Flags().StringVarP(&initialFrequency, "initial-frequency", "", "", "(Optional) Frequency the form starts with")
	cmd.Flags().BoolVarP(&editMode, "edit", "", false, "(Optional) Edit an existing connection")
	cmd.Flags().BoolVarP(&confirm, "confirm", "", false, "(Optional) Confirm schema changes in edit mode")
	cmd.Flags().StringSliceVarP(&syncModes, "sync-mode", "", nil, "(Optional) Stream sync mode overrides as stream_id=mode")
	return cmd
}

// editForm applies what a user would do in the form before pressing submit.
func editForm(f *form.FrequencyForm, frequencyValue, editedSchemaPath string, syncModes []string) error {
	if frequencyValue != "" {
		if err := f.SelectValue(frequencyValue); err != nil {
			return err
		}
	}
	f.Blur()

	if editedSchemaPath != "" {
		edited, err := loadSchema(editedSchemaPath)
		if err != nil {
			return err
		}

		normalized := types.NormalizeSchema(edited)
		if err := normalized.Validate(); err != nil {
			return fmt.Errorf("edited schema[%s] is invalid: %s", editedSchemaPath, err)
		}
		f.ChangeSchema(normalized)
	}

	for _, override := range syncModes {
		streamID, mode, found := strings.Cut(override, "=")
		if !found {
			return fmt.Errorf("invalid sync mode override[%s]; expected stream_id=mode", override)
		}
		if err := f.SetSyncMode(streamID, types.SyncMode(mode)); err != nil {
			return err
		}
	}

	return nil
}

func saveSubmission(outputPath string, values form.Submission) error {
	if viper.GetBool(constants.NoSave) {
		return nil
	}

	if outputPath == "" {
		outputPath = viper.GetString(constants.OutputPath)
	}
	if outputPath == "" {
		configFolder := viper.GetString(constants.ConfigFolder)
		if configFolder == "" {
			logger.Debug("No output path or config folder set; submission only printed")
			return nil
		}
		outputPath = filepath.Join(configFolder, "connection.json")
	}

	if err := utils.WriteFile(outputPath, values); err != nil {
		return err
	}

	logger.Infof("Submission written to %s", outputPath)
	return nil
}
