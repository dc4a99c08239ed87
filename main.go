package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/y16vm/y16/asm"
	"github.com/y16vm/y16/config"
	"github.com/y16vm/y16/loader"
	"github.com/y16vm/y16/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to config file (default: platform config dir)")
		strictMode  = flag.Bool("strict", false, "Abort on out-of-bounds memory access instead of skipping it")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("y16 %s\n", Version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: y16 [flags] <source-file>")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *strictMode {
		cfg.Execution.StrictMode = true
	}

	sourcePath := flag.Arg(0)
	source, err := os.ReadFile(sourcePath) // #nosec G304 -- user-supplied source path
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", sourcePath, err)
		os.Exit(1)
	}

	words, err := asm.Assemble(string(source))
	if err != nil {
		fmt.Fprintf(os.Stderr, "assembly failed: %v\n", err)
		os.Exit(1)
	}

	machine := vm.NewVM(cfg.Execution.MemorySize)
	machine.Strict = cfg.Execution.StrictMode

	if err := loader.Load(machine, words); err != nil {
		fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
		os.Exit(1)
	}
	machine.CPU.SetPC(cfg.Assembler.EntryAddress)

	if err := machine.Run(cfg.Execution.MaxCycles); err != nil {
		for _, diag := range machine.Diagnostics {
			fmt.Fprintln(os.Stderr, diag)
		}
		fmt.Fprintf(os.Stderr, "execution failed: %v\n", err)
		os.Exit(1)
	}

	for _, diag := range machine.Diagnostics {
		fmt.Fprintln(os.Stderr, diag)
	}
	fmt.Printf("halted after %d cycles\n", machine.Cycles)
	for i, r := range machine.CPU.Regs {
		fmt.Printf("R%-2d = 0x%016X\n", i, r)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}
