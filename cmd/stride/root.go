package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-hpc/stride/backend/fiber"
	"github.com/stride-hpc/stride/backend/looppar"
	"github.com/stride-hpc/stride/backend/threads"
	"github.com/stride-hpc/stride/backend/webgpu"
	"github.com/stride-hpc/stride/stride"
)

const version = "v0.1.0"

var (
	cfgFile     string
	backendFlag string
	cfg         *Config
)

var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Portable data-parallel kernels for Go",
	Long: `Stride runs data-parallel kernels over a hierarchy of blocks, threads,
and elements, portably across CPU and GPU backends. The same kernel and
work division run unchanged on any backend.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "backend: threads, fiber, looppar, webgpu")
}

// queueMode maps the configured blocking flag to a queue mode.
func queueMode(cfg *Config) stride.QueueMode {
	if cfg.Blocking {
		return stride.Blocking
	}
	return stride.NonBlocking
}

// openBackend resolves the configured backend to a platform and its cleanup.
func openBackend(cfg *Config) (stride.Platform, func(), error) {
	none := func() {}
	switch cfg.Backend {
	case "threads":
		return threads.NewPlatform(), none, nil
	case "fiber":
		return fiber.NewPlatform(), none, nil
	case "looppar":
		if cfg.Workers > 0 {
			return looppar.NewPlatformWith(looppar.Options{Workers: cfg.Workers}), none, nil
		}
		return looppar.NewPlatform(), none, nil
	case "webgpu":
		if !webgpu.IsAvailable() {
			return nil, none, fmt.Errorf("webgpu is not available on this system")
		}
		p, err := webgpu.New()
		if err != nil {
			return nil, none, err
		}
		return p, p.Release, nil
	default:
		return nil, none, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
