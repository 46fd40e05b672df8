package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/webgl-bridge/bridge"
	"github.com/wippyai/webgl-bridge/dispatch"
	"github.com/wippyai/webgl-bridge/driver"
	"github.com/wippyai/webgl-bridge/driver/wasmdriver"
)

func main() {
	var (
		script      = flag.String("script", "", "Path to a script run against the context")
		driverName  = flag.String("driver", "memory", "Driver: memory or wasm")
		wasmFile    = flag.String("wasm", "", "Driver module for -driver wasm")
		webgl2      = flag.Bool("webgl2", false, "Open a WebGL 2 context")
		width       = flag.Int("width", 300, "Drawing buffer width")
		height      = flag.Int("height", 150, "Drawing buffer height")
		legacy      = flag.Bool("legacy", false, "Declare the classes in script before the bridge runs")
		verbose     = flag.Bool("v", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive console")
	)
	flag.Parse()

	if *script == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: glsh -script <file.js> [-driver memory|wasm -wasm <file.wasm>] [-webgl2]")
		fmt.Fprintln(os.Stderr, "       glsh -i  (interactive console)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}
	bridge.SetLogger(log.Named("bridge"))
	dispatch.SetLogger(log.Named("dispatch"))
	driver.SetLogger(log.Named("driver"))
	wasmdriver.SetLogger(log.Named("wasm"))
	defer func() { _ = log.Sync() }()

	cfg := config{
		driver:   *driverName,
		wasmFile: *wasmFile,
		webgl2:   *webgl2,
		width:    *width,
		height:   *height,
		legacy:   *legacy,
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, *script); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, script string) error {
	src, err := os.ReadFile(script)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Printf("Driver: %s\n", s.driverName)
	fmt.Printf("Context: %s\n", s.describeContexts())

	result, err := s.evalNamed(script, string(src))
	if err != nil {
		return fmt.Errorf("run %s: %w", script, err)
	}
	fmt.Printf("Result: %s\n", result)

	if log := s.callLog(); len(log) > 0 {
		fmt.Printf("\n--- driver calls ---\n")
		for _, line := range log {
			fmt.Println(line)
		}
	}
	if summary := s.objectSummary(); len(summary) > 0 {
		fmt.Printf("\n--- objects ---\n")
		for _, line := range summary {
			fmt.Println(line)
		}
	}
	return nil
}
