package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-langlink/cmd/internal/bootstrap"
)

var moduleBuilder bootstrap.ModuleBuilder = bootstrap.BuildModule

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := runServer(ctx, os.Args[1:]); err != nil {
		log.Fatalf("langlink server: %v", err)
	}
}

func runServer(ctx context.Context, args []string) error {
	var shared bootstrap.Flags
	fs := flag.NewFlagSet("langlink-server", flag.ExitOnError)
	shared.Register(fs)
	addr := fs.String("addr", ":8080", "HTTP listen address")
	basePath := fs.String("base-path", "/api", "Base path for the REST routes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := shared.Config()
	cfg.REST.Addr = *addr
	cfg.REST.BasePath = *basePath

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Close()

	server := &http.Server{
		Addr:              cfg.REST.Addr,
		Handler:           module.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
