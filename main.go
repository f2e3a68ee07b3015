package main

import (
	"os"
)

func main() {
	args := getArgs()
	if args == nil {
		os.Exit(1)
	}

	cfg, err := loadConfig(args.ConfigFile)
	if err != nil {
		printUsage(err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel, cfg.LogFormat)

	srv := NewServer(cfg, log)

	if err := srv.Start(); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
