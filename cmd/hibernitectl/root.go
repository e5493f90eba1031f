package main

import (
	"fmt"
	"os"

	"github.com/hibernite/hibernite/cmd"
	"github.com/spf13/cobra"
)

var (
	apiAddress string
)

func init() {
	ctlCommand.PersistentFlags().StringVarP(&apiAddress, "api-address", "", cmd.DefaultAPIAddress, "address of the hibernite control api")
	ctlCommand.AddCommand(cmd.VersionCmd)
}

var ctlCommand = &cobra.Command{
	Use:   "hibernitectl",
	Short: "control a running hibernite init (with --api) from the cli",
	Long:  "This command can be used to suspend, resume and inspect a hibernite-supervised workload by command line.",
}

func Execute() {
	if err := ctlCommand.Execute(); err != nil {
		fmt.Println(renderError(err))
		os.Exit(1)
	}
}
