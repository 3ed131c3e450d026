package cli

import (
	"fmt"

	"github.com/arthur-debert/discomon/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	var (
		format   string
		template bool
	)

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if template {
				_, err := fmt.Fprintln(out, config.GenerateConfigContent())
				return err
			}

			cfg, err := config.Load(config.LoadOptions{File: root.configFile})
			if err != nil {
				return err
			}
			content, err := cfg.Marshal(format)
			if err != nil {
				return err
			}
			_, err = out.Write(content)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, MsgFlagFormat)
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)

	return cmd
}
