package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/deanpointblank/codenamestory/internal/mapgen"
	"github.com/deanpointblank/codenamestory/internal/pointfield"
	"github.com/deanpointblank/codenamestory/internal/tectonics"
)

type surveyResult struct {
	seed  int64
	stats tectonics.Stats
	dist  pointfield.Distribution
}

func (r surveyResult) land() float64 {
	total := r.dist.DeepWater + r.dist.ShallowWater + r.dist.Land + r.dist.Mountains
	if total == 0 {
		return 0
	}
	return float64(r.dist.Land+r.dist.Mountains) / float64(total)
}

func (r surveyResult) String() string {
	st := r.stats
	return fmt.Sprintf("seed=%d oceanic=%d/%d boundaries=%d conv=%d div=%d trans=%d land=%.2f elev=[%.2f, %.2f] outside=%d",
		r.seed, st.Oceanic, st.Plates, st.Boundaries,
		st.ByKind[tectonics.Convergent], st.ByKind[tectonics.Divergent], st.ByKind[tectonics.Transform],
		r.land(), st.MinElevation, st.MaxElevation, st.OutOfRange)
}

func main() {
	base := mapgen.DefaultConfig()
	base.Bind(flag.CommandLine)
	count := flag.Int("count", 64, "number of seeds to survey, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	fmt.Printf("Surveying %d seeds (%d workers, %d points, %d plates)\n", *count, *workers, base.Points, base.Plates)

	jobs := make(chan int64)
	results := make(chan surveyResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- survey(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *count; i++ {
			jobs <- base.Seed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []surveyResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].land() != all[j].land() {
			return all[i].land() > all[j].land()
		}
		return all[i].seed < all[j].seed
	})

	fmt.Printf("Finished in %s\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		if i >= *top {
			break
		}
		fmt.Println(res)
	}
}

func survey(base mapgen.Config, seed int64) surveyResult {
	cfg := base
	cfg.Seed = seed
	cfg.Logger = nil
	state := mapgen.NewWithConfig(cfg)
	return surveyResult{
		seed:  seed,
		stats: tectonics.Summarize(state.Model(), state.Points()),
		dist:  pointfield.Distribute(state.Points()),
	}
}
