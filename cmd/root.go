package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// DefaultAPIAddress is where the control api conventionally lives when it
// is enabled; hibernitectl assumes it unless told otherwise.
const DefaultAPIAddress = "unix:///run/hibernite/hibernite.sock"

var rootCmd = &cobra.Command{
	Use:     "hibernite",
	Short:   "Hibernite - a tiny init for containers that can freeze its workload",
	Long:    "Hibernite is a minimal PID 1 designed for usage as `ENTRYPOINT` in container images. It spawns a single workload, reaps orphans, forwards signals, and can suspend and later resume the whole workload process group without terminating it.",
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}

		log.Warn("Running 'hibernite' without a sub-command - defaulting to 'run'. This behaviour may change in future releases!")
		run.Run(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
