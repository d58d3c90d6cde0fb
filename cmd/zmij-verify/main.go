// zmij-verify exhaustively cross-checks the shortest-decimal conversion
// of every binary64 value in one binary exponent class against the
// standard library. Only significands flagged by the carry enumerator
// can disagree with an infinitely precise power of 10, so only those
// are converted.
package main

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/vitaut/zmij"
)

type CLI struct {
	RawExp  int    `arg:"" help:"Raw biased binary exponent to verify (1 to 2046)."`
	Workers int    `short:"w" help:"Number of worker goroutines (default: one per CPU)."`
	Limit   uint64 `short:"l" help:"Verify only the first N significands of the class."`
}

const (
	numSigBits  = 52
	expMask     = 1<<11 - 1
	implicitBit = uint64(1) << numSigBits
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("zmij-verify"),
		kong.Description("Cross-check shortest-decimal conversion for one binary exponent class."),
	)
	ctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	if cli.RawExp <= 0 || cli.RawExp >= expMask {
		return fmt.Errorf("unsupported raw exponent %d", cli.RawExp)
	}

	class := zmij.ClassifyExp(cli.RawExp)
	fmt.Printf("verifying binary exponent %d (0x%03x), dec_exp=%d shift=%d\n",
		class.BinExp, cli.RawExp, class.DecExp, class.Shift)
	if class.Exact {
		fmt.Printf("power of 10 is exact for bin_exp=%d dec_exp=%d\n",
			class.BinExp, class.DecExp)
		return nil
	}

	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := uint64(1) << numSigBits
	if cli.Limit != 0 && cli.Limit < total {
		total = cli.Limit
	}
	fmt.Printf("using %d workers\n", workers)

	var processed, specialCases, mismatches atomic.Uint64
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("progress: %7.4f%% (%d special cases)\n",
					float64(processed.Load())*100/float64(total),
					specialCases.Load())
			}
		}
	}()

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		begin := total * uint64(w) / uint64(workers)
		end := total * uint64(w+1) / uint64(workers)
		if begin == 0 {
			begin = 1 // the irregular significand is tested elsewhere
		}
		g.Go(func() error {
			reported := false
			zmij.FindCarriedAwayDoubles(class.Pow10Lo, class.Shift,
				implicitBit+begin, implicitBit+end, func(binSig uint64) {
					specialCases.Add(1)
					if ok, got, want := check(cli.RawExp, binSig); !ok {
						mismatches.Add(1)
						if !reported {
							reported = true
							bits := uint64(cli.RawExp)<<numSigBits | (binSig &^ implicitBit)
							fmt.Printf("output mismatch for %#016x: %v != %v\n",
								bits, got, want)
						}
					}
				})
			processed.Add(end - begin)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	close(done)

	fmt.Printf("%d mismatches and %d special cases in %d values in %.2f seconds\n",
		mismatches.Load(), specialCases.Load(), processed.Load(),
		time.Since(start).Seconds())
	if n := mismatches.Load(); n != 0 {
		return fmt.Errorf("%d mismatches against the reference", n)
	}
	return nil
}

// check converts the double with the given raw exponent and significand
// and compares the result against the standard library's shortest
// conversion with the reference scaled up to the kernel's digit count.
func check(rawExp int, binSig uint64) (ok bool, got, want zmij.DecFP) {
	bits := uint64(rawExp)<<numSigBits | (binSig &^ implicitBit)
	v := math.Float64frombits(bits)

	got = zmij.ToDecimal(v)
	want = reference(v)

	// The kernel keeps trailing zeros that the reference strips.
	for s := got.Sig; s != 0 && s%10 == 0; s /= 10 {
		want.Sig *= 10
		want.Exp--
	}
	return got == want, got, want
}

// reference parses strconv's shortest scientific form back into a
// decimal significand and exponent.
func reference(v float64) zmij.DecFP {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	mant, expPart, _ := strings.Cut(s, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		panic(err)
	}
	intPart, frac, _ := strings.Cut(mant, ".")
	sig, err := strconv.ParseInt(intPart+frac, 10, 64)
	if err != nil {
		panic(err)
	}
	return zmij.DecFP{Sig: sig, Exp: int32(exp - len(frac)), Neg: neg}
}
