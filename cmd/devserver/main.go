package main

import (
	"flag"
	"fmt"

	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/devserver"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// registered before config triggers flag.Parse
	degraded := flag.Bool("degraded", false, "Answer 503 on every endpoint, simulating a down database")

	log := logger.NewLogger("portero-devserver")
	cfg, err := config.GetDevServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := devserver.NewHandler(cfg, *degraded, log)

	srv, err := server.NewServer(handler.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init dev server error")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
