package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Version string
	Commit  string
	BuiltAt string
)

func init() {
	rootCmd.AddCommand(VersionCmd)
}

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of hibernite",
	Long:  `All software has versions. This is hibernite's`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Infof("Hibernite init, version %s (commit %s), built at %s", Version, Commit, BuiltAt)
	},
}
