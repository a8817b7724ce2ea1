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

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the devices of every backend",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	listPlatform(threads.NewPlatform())
	listPlatform(fiber.NewPlatform())
	listPlatform(looppar.NewPlatform())

	if !webgpu.IsAvailable() {
		fmt.Println("webgpu: not available")
		return nil
	}
	p, err := webgpu.New()
	if err != nil {
		fmt.Printf("webgpu: %v\n", err)
		return nil
	}
	defer p.Release()
	listPlatform(p)
	return nil
}

func listPlatform(p stride.Platform) {
	for i := 0; i < p.DeviceCount(); i++ {
		dev, err := stride.GetDevice(p, i)
		if err != nil {
			fmt.Printf("  device %d: %v\n", i, err)
			continue
		}
		fmt.Printf("%s [%d]: %s\n", dev.Kind(), dev.Ordinal(), dev.Name())
	}
}
