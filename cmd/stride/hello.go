package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stride-hpc/stride/stride"
)

var helloBlocks int

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Launch a kernel that greets from every logical thread",
	RunE:  runHello,
}

func init() {
	helloCmd.Flags().IntVar(&helloBlocks, "blocks", 8, "number of single-thread blocks to launch")
	rootCmd.AddCommand(helloCmd)
}

func runHello(cmd *cobra.Command, args []string) error {
	platform, cleanup, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	dev, err := stride.GetDevice(platform, cfg.Device)
	if err != nil {
		return err
	}
	fmt.Printf("Running on %s\n", dev)

	queue := stride.NewQueue(dev, queueMode(cfg))
	defer queue.Close()

	div, err := stride.NewWorkDiv(stride.NewVec(helloBlocks), stride.NewVec(1), stride.NewVec(1))
	if err != nil {
		return err
	}
	hello := stride.KernelFunc(func(idx stride.Index, args ...any) {
		fmt.Printf("Hello, World from stride thread %d!\n", idx.GridThreadIdx()[0])
	})
	if err := queue.Enqueue(stride.NewKernelTask(div, hello)); err != nil {
		return err
	}
	return queue.Wait()
}
