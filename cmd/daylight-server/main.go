package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/chrissnell/daylight/internal/constants"
	"github.com/chrissnell/daylight/internal/controllers/restserver"
	"github.com/chrissnell/daylight/internal/log"
	"github.com/chrissnell/daylight/pkg/config"
)

func main() {
	cfgFile := flag.String("config", constants.DefaultConfigFile, "Path to YAML configuration (optional)")
	port := flag.Int("port", 0, "Override rest.port from the configuration")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("daylight-server %s\n", constants.Version)
		os.Exit(0)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(*cfgFile, *port); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}

func run(cfgFile string, port int) error {
	filename, _ := filepath.Abs(cfgFile)
	provider := config.NewYAMLProvider(filename)
	defer provider.Close()

	if _, err := provider.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != 0 {
		rest, _ := provider.GetRESTServer()
		rest.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	ctrl, err := restserver.NewController(ctx, &wg, provider, log.GetSugaredLogger())
	if err != nil {
		return fmt.Errorf("failed to create REST server: %w", err)
	}
	if err := ctrl.StartController(); err != nil {
		return fmt.Errorf("failed to start REST server: %w", err)
	}

	wg.Wait()
	log.Info("REST server stopped")
	return nil
}
