/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package protocol

import (
	"fmt"
	"io"

	"github.com/datazip-inc/olake-syncform/constants"
	"github.com/datazip-inc/olake-syncform/types"
	"github.com/datazip-inc/olake-syncform/utils"
	"github.com/datazip-inc/olake-syncform/utils/logger"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flags shared by every command
type options struct {
	configPath   string
	configFolder string
	logLevel     string
	noSave       bool

	schemaPath       string
	editedSchemaPath string
	outputPath       string
}

// CreateRootCommand builds the syncform command tree.
func CreateRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "syncform",
		Short: "root command",
		Long:  "syncform drives the connection frequency form: choose how often a sync runs and review the streams it copies",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			if ok := utils.IsValidSubcommand(cmd.Commands(), args[0]); !ok {
				return fmt.Errorf("'%s' is an invalid command. Use 'syncform --help' to display usage guide", args[0])
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "", "", "(Optional) yaml or json file with settings, overridden by flags and environment")
	rootCmd.PersistentFlags().StringVarP(&opts.configFolder, "config-folder", "", "", "(Optional) Folder used for logs and default output")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "", "info", "(Optional) Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&opts.noSave, "no-save", "", false, "(Optional) Flag to skip writing logs and output files")

	rootCmd.AddCommand(optionsCmd(opts), normalizeCmd(opts), diffCmd(opts), submitCmd(opts))

	// Disable Cobra CLI's built-in usage and error handling
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	return rootCmd
}

func initConfig(cmd *cobra.Command, opts *options) error {
	viper.AutomaticEnv()
	viper.SetDefault(constants.LogLevel, "info")

	if opts.configPath != "" {
		viper.SetConfigFile(opts.configPath)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config[%s]: %s", opts.configPath, err)
		}
	}

	if cmd.Flags().Changed("log-level") {
		viper.Set(constants.LogLevel, opts.logLevel)
	}
	if opts.configFolder != "" {
		viper.Set(constants.ConfigFolder, opts.configFolder)
	}
	if opts.noSave {
		viper.Set(constants.NoSave, true)
	}

	// logger uses CONFIG_FOLDER
	logger.Init()
	return nil
}

func loadSchema(path string) (*types.SyncSchema, error) {
	if path == "" {
		return nil, fmt.Errorf("schema file path not passed")
	}

	schema := &types.SyncSchema{}
	if err := utils.UnmarshalFile(path, schema); err != nil {
		return nil, err
	}

	logger.Debugf("Loaded schema[%s] with %d streams", path, len(schema.Streams))
	return schema, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %s", err)
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}
