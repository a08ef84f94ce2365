package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptops/evalctl/pkg/version"
)

var versionJSON bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if versionJSON {
			output, err := info.JSON()
			if err != nil {
				return err
			}
			fmt.Println(output)
			return nil
		}

		fmt.Println(info.String())
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information as JSON")
}
