package cmd

import (
	"os"
	"os/signal"
	"time"

	"github.com/hibernite/hibernite/pkg/pidfile"
	"github.com/hibernite/hibernite/pkg/probe"
	"github.com/hibernite/hibernite/pkg/proc"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiAddress   string
	pidFile      string
	awaitURLs    []string
	awaitTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(run)
	run.Flags().StringVar(&apiAddress, "api", "", "serve the control api on this address, e.g. "+DefaultAPIAddress)
	run.Flags().StringVar(&pidFile, "pidfile", "", "write hibernites process id to this file")
	run.Flags().StringArrayVar(&awaitURLs, "await", nil, "wait for this dependency to answer before spawning the workload (repeatable; redis://, mysql://, mongodb://, amqp://, http://, file://)")
	run.Flags().DurationVar(&awaitTimeout, "await-timeout", 60*time.Second, "give up when awaited dependencies are not ready after this long")
}

var run = &cobra.Command{
	Use:   "run [flags] -- command [args...]",
	Short: "Spawn and supervise the workload",
	Long:  "This sub-command waits for awaited dependencies, spawns the workload in its own process group and supervises it until it exits: orphans are reaped, signals are classified and forwarded, and the whole process group can be frozen with SIGUSR1 and thawed with SIGUSR2 (or via the control api). Hibernite exits with the workload's exit code, or 128+signal if the workload was signal-killed.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pidFileHandle := pidfile.New(pidFile)
		if err := pidFileHandle.Acquire(); err != nil {
			log.Fatalf("failed to write pid file to %q: %s", pidFile, err)
		}

		releasePidFile := func() {
			if err := pidFileHandle.Release(); err != nil {
				log.Errorf("error while cleaning up the pid file: %s", err)
			}
		}

		if os.Getpid() != 1 {
			if err := proc.BecomeSubreaper(); err != nil {
				log.WithError(err).Warn("failed to register as child subreaper; orphans may not be reaped")
			}
		}

		// subscribe before anything can spawn, so no early SIGCHLD is lost
		signals := make(chan os.Signal, 1024)
		signal.Notify(signals)

		probes := map[string]probe.Probe{}
		for _, raw := range awaitURLs {
			p, err := probe.FromURL(raw)
			if err != nil {
				releasePidFile()
				log.Fatalf("failed to configure awaited dependency: %s", err)
			}
			probes[raw] = p
		}

		if err := probe.Wait(probes, signals, awaitTimeout); err != nil {
			log.WithError(err).Error("awaited dependencies never became ready, not spawning workload")
			releasePidFile()
			os.Exit(proc.ExitSpawnFailure)
		}

		supervisor := proc.NewChildSupervisor()
		if _, err := supervisor.Spawn(args[0], args[1:]); err != nil {
			log.WithError(err).Error("failed to spawn workload")
			releasePidFile()
			os.Exit(proc.ExitSpawnFailure)
		}

		controller := proc.NewSuspendController(supervisor)
		requests := make(chan proc.Request)
		loop := proc.NewLoop(supervisor, controller, signals, requests)

		var api *proc.Api
		if apiAddress != "" {
			api = proc.NewApi(apiAddress, requests)
			go func() {
				if err := api.Start(); err != nil {
					log.WithError(err).Error("control api stopped with error")
				}
			}()
		}

		exitCode := loop.Run()

		go loop.Drain()
		if api != nil {
			if err := api.Shutdown(); err != nil {
				log.WithError(err).Error("failed to shut down control api")
			}
		}
		releasePidFile()

		os.Exit(exitCode)
	},
}
