package main

import (
	"fmt"
	"os"

	"github.com/kalinauskas/corvid/config"
	"github.com/kalinauskas/corvid/engine"
	"github.com/kalinauskas/corvid/uci"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfgPath := os.Getenv("CORVID_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 1
	}

	var logger *engine.Logger
	if cfg.EmitDepthLog {
		logger, err = engine.NewLogger("corvid.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			return 1
		}
		defer logger.Close()
	}

	eng := engine.New(cfg, logger)
	adapter := uci.New(os.Stdin, os.Stdout, eng, cfg)
	return adapter.Run()
}
