package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"testing"
	"time"

	"github.com/lixenwraith/asciiquarium/aquarium"
	"github.com/lixenwraith/asciiquarium/asset"
	"github.com/lixenwraith/asciiquarium/render"
)

// Warm-up ticks so ships, schools and bubbles are on screen
const warmTicks = 1500

var gridSizes = []aquarium.Size{
	{W: 80, H: 24},
	{W: 160, H: 48},
	{W: 320, H: 96},
}

var (
	fishFlag = flag.Int("fish", 24, "Normal fish seeded per scene")
	seedFlag = flag.Uint64("seed", 1, "Scene seed")
)

func warmScene(size aquarium.Size, assets asset.Table) *aquarium.State {
	s := aquarium.NewState(size.W, size.H)
	aquarium.SeedFish(s, assets, *fishFlag, *seedFlag)
	for i := 0; i < warmTicks; i++ {
		aquarium.Step(s, assets)
	}
	return s
}

func frameHash(s *aquarium.State, assets asset.Table) uint64 {
	h := fnv.New64a()
	h.Write([]byte(render.Render(s, assets)))
	return h.Sum64()
}

// === DETERMINISM VERIFICATION ===

func verifyDeterminism(assets asset.Table) bool {
	fmt.Println("=== Determinism Verification ===")
	fmt.Println()
	fmt.Printf("%-10s %18s %18s %6s\n", "Grid", "Run A", "Run B", "Match")

	ok := true
	for _, size := range gridSizes {
		a := frameHash(warmScene(size, assets), assets)
		b := frameHash(warmScene(size, assets), assets)
		fmt.Printf("%4dx%-5d %18x %18x %6v\n", size.W, size.H, a, b, a == b)
		ok = ok && a == b
	}
	fmt.Println()
	return ok
}

// === BENCHMARKS ===

func benchStep(size aquarium.Size, assets asset.Table) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		s := warmScene(size, assets)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			aquarium.Step(s, assets)
		}
	})
}

func benchCompose(size aquarium.Size, assets asset.Table) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		s := warmScene(size, assets)
		c := render.NewDefaultCompositor()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c.Compose(s, assets)
		}
	})
}

func benchRender(size aquarium.Size, assets asset.Table) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		s := warmScene(size, assets)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = render.Render(s, assets)
		}
	})
}

func main() {
	flag.Parse()

	fmt.Println("asciiquarium Frame Pipeline Benchmark")
	fmt.Println("=====================================")
	fmt.Println()

	assets := asset.Fish()
	if !verifyDeterminism(assets) {
		fmt.Println("WARNING: identical scenes rendered differently")
		fmt.Println()
	}

	fmt.Println("=== Running Benchmarks ===")
	fmt.Println()
	fmt.Printf("%-10s %-9s %12s %12s %10s\n", "Grid", "Stage", "ns/op", "B/op", "allocs/op")

	budget := 33 * time.Millisecond
	for _, size := range gridSizes {
		stages := []struct {
			name string
			run  func(aquarium.Size, asset.Table) testing.BenchmarkResult
		}{
			{"step", benchStep},
			{"compose", benchCompose},
			{"render", benchRender},
		}
		var frame int64
		for _, st := range stages {
			r := st.run(size, assets)
			// render already includes compose
			if st.name != "compose" {
				frame += r.NsPerOp()
			}
			fmt.Printf("%4dx%-5d %-9s %12d %12d %10d\n",
				size.W, size.H, st.name, r.NsPerOp(), r.AllocedBytesPerOp(), r.AllocsPerOp())
		}
		fmt.Printf("%4dx%-5d %-9s %11.2f%% of a %v frame\n", size.W, size.H, "frame",
			float64(frame)/float64(budget.Nanoseconds())*100, budget)
		fmt.Println()
	}
}
