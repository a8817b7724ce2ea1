package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"

	"github.com/stride-hpc/stride/backend/threads"
	"github.com/stride-hpc/stride/buffer"
	"github.com/stride-hpc/stride/stride"
)

var (
	piPoints int
	piRadius float64
	piDist   string
)

var piCmd = &cobra.Command{
	Use:   "pi",
	Short: "Estimate pi by the Monte-Carlo method on the selected backend",
	Long: `Draw random points in a square, run a kernel that tests each point
against the inscribed quarter circle, and estimate pi from the fraction
inside. The --dist flag selects how points map onto logical threads:

  exact    one point per thread, thread count must equal the point count
  guarded  at most one point per thread, launch rounded up to whole blocks
  strided  a fixed grid strides over the points
  blocked  strided with elementsPerThread-sized chunks (the general form)`,
	RunE: runPi,
}

func init() {
	piCmd.Flags().IntVarP(&piPoints, "points", "n", 0, "number of random points (default from config)")
	piCmd.Flags().Float64VarP(&piRadius, "radius", "r", 0, "circle radius (default from config)")
	piCmd.Flags().StringVar(&piDist, "dist", "", "work distribution (default from config)")
	rootCmd.AddCommand(piCmd)
}

func runPi(cmd *cobra.Command, args []string) error {
	n, r, dist := cfg.Pi.Points, float32(cfg.Pi.Radius), cfg.Pi.Dist
	if piPoints > 0 {
		n = piPoints
	}
	if piRadius > 0 {
		r = float32(piRadius)
	}
	if piDist != "" {
		dist = piDist
	}

	platform, cleanup, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	dev, err := stride.GetDevice(platform, cfg.Device)
	if err != nil {
		return err
	}
	host, err := stride.GetDevice(threads.NewPlatform(), 0)
	if err != nil {
		return err
	}
	fmt.Printf("Computing pi from %d points on %s, %s distribution\n", n, dev, dist)

	queue := stride.NewQueue(dev, queueMode(cfg))
	defer queue.Close()

	extent := stride.NewVec(n)
	xHost, err := buffer.Alloc[float32](host, extent)
	if err != nil {
		return err
	}
	yHost, err := buffer.Alloc[float32](host, extent)
	if err != nil {
		return err
	}
	insideHost, err := buffer.Alloc[uint8](host, extent)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	xs, ys := xHost.Span(), yHost.Span()
	for i := 0; i < n; i++ {
		xs.Set(i, rng.Float32()*r)
		ys.Set(i, rng.Float32()*r)
	}

	xDev, err := buffer.Alloc[float32](dev, extent)
	if err != nil {
		return err
	}
	defer xDev.Free()
	yDev, err := buffer.Alloc[float32](dev, extent)
	if err != nil {
		return err
	}
	defer yDev.Free()
	insideDev, err := buffer.Alloc[uint8](dev, extent)
	if err != nil {
		return err
	}
	defer insideDev.Free()

	div, forEach, err := piLaunch(dist, n)
	if err != nil {
		return err
	}
	kernel := stride.KernelFunc(func(idx stride.Index, args ...any) {
		xs := args[0].(buffer.Span[float32])
		ys := args[1].(buffer.Span[float32])
		inside := args[2].(buffer.Span[uint8])
		r := args[3].(float32)
		forEach(idx, n, func(i int) {
			x, y := xs.At(i), ys.At(i)
			if math32.Sqrt(x*x+y*y) <= r {
				inside.Set(i, 1)
			} else {
				inside.Set(i, 0)
			}
		})
	})

	start := time.Now()
	if err := buffer.Copy(queue, xDev, xHost, extent); err != nil {
		return err
	}
	if err := buffer.Copy(queue, yDev, yHost, extent); err != nil {
		return err
	}
	task := stride.NewKernelTask(div, kernel, xDev.Span(), yDev.Span(), insideDev.Span(), r)
	if err := queue.Enqueue(task); err != nil {
		return err
	}
	if err := buffer.Copy(queue, insideHost, insideDev, extent); err != nil {
		return err
	}
	if err := queue.Wait(); err != nil {
		return err
	}

	inside := insideHost.Span()
	count := 0
	for i := 0; i < n; i++ {
		if inside.At(i) != 0 {
			count++
		}
	}
	pi := 4 * float64(count) / float64(n)

	fmt.Printf("Computed pi is %v\n", pi)
	fmt.Printf("Execution time: %v\n", time.Since(start))
	return nil
}

// piLaunch maps a distribution name to a work division over n points and
// the matching per-thread loop.
func piLaunch(dist string, n int) (stride.WorkDiv, func(stride.Index, int, func(int)), error) {
	const threadsPerBlock = 64
	switch dist {
	case "exact":
		div := stride.MustWorkDiv(stride.NewVec(n), stride.NewVec(1), stride.NewVec(1))
		return div, stride.ForEachExact, nil
	case "guarded":
		blocks := (n + threadsPerBlock - 1) / threadsPerBlock
		div := stride.MustWorkDiv(stride.NewVec(blocks), stride.NewVec(threadsPerBlock), stride.NewVec(1))
		return div, stride.ForEachGuarded, nil
	case "strided":
		div := stride.MustWorkDiv(stride.NewVec(8), stride.NewVec(threadsPerBlock), stride.NewVec(1))
		return div, stride.ForEachStrided, nil
	case "blocked":
		div := stride.MustWorkDiv(stride.NewVec(8), stride.NewVec(threadsPerBlock), stride.NewVec(8))
		return div, stride.ForEach, nil
	default:
		return stride.WorkDiv{}, nil, fmt.Errorf("unknown distribution %q", dist)
	}
}
