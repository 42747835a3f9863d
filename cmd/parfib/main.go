// parfib computes the nth Fibonacci number on a fixed number of
// parallel workers and joins them in spawn order. It exists to gauge
// how well independent workloads scale on a host; it has nothing to do
// with the translation pipeline.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type result struct {
	fib      int
	duration time.Duration
}

func fib(n int) int {
	if n == 0 || n == 1 {
		return 1
	}
	return fib(n-1) + fib(n-2)
}

func run(n int) result {
	start := time.Now()
	f := fib(n)
	return result{fib: f, duration: time.Since(start)}
}

func main() {
	var n int
	var parallelism int

	rootCmd := &cobra.Command{
		Use:   "parfib",
		Short: "Compute fib(n) on parallel workers and report per-worker timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if parallelism < 1 {
				return fmt.Errorf("parallelism must be positive, got %d", parallelism)
			}
			fmt.Printf("Calculating the nth element of the Fibonacci sequence multiple times in parallel, where n = %d, parallelism = %d\n", n, parallelism)

			receivers := make([]chan result, 0, parallelism)
			start := time.Now()
			for i := 0; i < parallelism; i++ {
				ch := make(chan result, 1)
				receivers = append(receivers, ch)
				go func() {
					ch <- run(n)
				}()
			}

			// Join in spawn order; each channel delivers exactly once.
			for _, ch := range receivers {
				r := <-ch
				fmt.Printf("fib(%d) = %d (elapsed: %v)\n", n, r.fib, r.duration)
			}
			fmt.Printf("Elapsed(total) = %v\n", time.Since(start))
			return nil
		},
	}
	rootCmd.Flags().IntVarP(&n, "n", "n", 30, "Which Fibonacci element to compute")
	rootCmd.Flags().IntVar(&parallelism, "parallelism", 4, "Number of parallel workers")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
