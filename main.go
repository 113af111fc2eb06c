package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/thelolagemann/gbcpu/internal/cpu"
	"github.com/thelolagemann/gbcpu/pkg/log"
	"github.com/thelolagemann/gbcpu/pkg/program"
)

// segments collects repeated -load flags.
type segments []string

func (s *segments) String() string {
	return strings.Join(*s, ",")
}

func (s *segments) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	var logger = log.New()

	var loads segments
	programFile := flag.String("program", "", "The program file to load at -pc (plain, .gz, .zip or .7z)")
	flag.Var(&loads, "load", "Load a file at an address, as address:file. May be repeated")
	pc := flag.String("pc", "0x0100", "The initial program counter")
	sp := flag.String("sp", "0xFFFE", "The initial stack pointer")
	debug := flag.Bool("debug", false, "Trace every executed instruction")
	dump := flag.Bool("dump", false, "Print the registers and a memory digest when the run ends")
	maxSteps := flag.Int("max-steps", 0, "Stop after this many instructions, 0 runs until HALT")
	flag.Parse()

	if *programFile == "" && len(loads) == 0 {
		flag.Usage()
		logger.Fatal("no program given, use -program or -load")
	}

	start, err := program.ParseAddress(*pc)
	if err != nil {
		logger.Fatal(err.Error())
	}
	stack, err := program.ParseAddress(*sp)
	if err != nil {
		logger.Fatal(err.Error())
	}

	specs := []string(loads)
	if *programFile != "" {
		specs = append([]string{start.String() + ":" + *programFile}, specs...)
	}
	img, err := program.Load(specs...)
	if err != nil {
		logger.Fatal(err.Error())
	}

	opts := []cpu.Opt{cpu.WithPC(start), cpu.WithSP(stack), cpu.WithLogger(logger)}
	if *debug {
		opts = append(opts, cpu.Debug())
	}
	c := cpu.New(opts...)

	if err := img.LoadInto(c); err != nil {
		logger.Fatal(err.Error())
	}
	logger.Infof("loaded %d byte(s) in %d segment(s), starting at %s", img.Size(), len(img.Segments), start)

	if *maxSteps > 0 {
		var steps int
		steps, err = c.RunFor(*maxSteps)
		logger.Infof("executed %d instruction(s)", steps)
	} else {
		err = c.Run()
	}

	if *dump {
		pp.Println(c.Registers)
		fmt.Printf("cycles: %d, halted: %v, memory: %016x\n", c.Cycles(), c.Halted(), c.Checksum())
	}

	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
