package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/take"
	"github.com/wippyai/take/alloc"
	"github.com/wippyai/take/taketest"
)

func main() {
	var (
		demo  = flag.Bool("demo", false, "Run the scripted demo and exit")
		debug = flag.Bool("debug", false, "Log every shell alloc/free to stderr")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		alloc.SetLogger(logger)
	}

	if *demo || !term.IsTerminal(int(os.Stdin.Fd())) {
		runDemo()
		return
	}

	if err := runInteractive(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runDemo walks the container kinds once and prints the accounting.
func runDemo() {
	arena := alloc.NewArena()
	rec := taketest.NewRecorder()

	fmt.Println("take-inspect: scripted demo")
	fmt.Println()

	b := take.NewBoxIn(rec.Token("box-token"), arena)
	out := b.Take()
	fmt.Printf("box take:    drops during take = %d\n", rec.TotalDrops())
	out.Drop()
	fmt.Printf("owner drop:  drops total = %d\n", rec.TotalDrops())

	r1 := take.NewRcIn(rec.Token("rc-token"), arena)
	r2 := r1.Clone()
	dup := r1.Take()
	fmt.Printf("shared take: clones = %d, drops = %d\n", rec.Clones("rc-token"), rec.Drops("rc-token"))
	r2.Drop()
	dup.Drop()
	fmt.Printf("all owners:  drops = %d\n", rec.Drops("rc-token"))

	v := take.NewVecIn[*taketest.Token](0, arena)
	for i := 0; i < 5; i++ {
		v.Push(rec.Token(fmt.Sprintf("vec-token-%d", i)))
	}
	owned := v.Take()
	fmt.Printf("vec take:    %d elements moved, %d drops fired\n", owned.Len(), rec.TotalDrops()-3)
	owned.Drop()

	st := arena.Stats()
	fmt.Println()
	fmt.Printf("arena: allocs=%d frees=%d live=%d  double-drops=%d\n",
		st.Allocs, st.Frees, st.LiveBlocks, rec.DoubleDrops())
}
