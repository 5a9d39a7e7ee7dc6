package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dock-labs/rdf2020soundness/errors"
	"github.com/dock-labs/rdf2020soundness/logger"
	"github.com/dock-labs/rdf2020soundness/mcptool"
	"github.com/dock-labs/rdf2020soundness/rule"
	"github.com/dock-labs/rdf2020soundness/server"
	"github.com/dock-labs/rdf2020soundness/watch"
)

var serveMCP bool

func init() {
	ServeCmd.Flags().BoolVar(&serveMCP, "mcp", false, "Serve over the Model Context Protocol (stdio) instead of HTTP")
}

// ServeCmd starts the soundness HTTP/WebSocket server, or, with --mcp,
// exposes the same checks as MCP tools over stdio.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP/WebSocket server (or, with --mcp, an MCP stdio server)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadEngineConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	rules, err := loadRuleSet(cmd, cfg)
	if err != nil {
		return err
	}

	driver, closeStore, err := newDriver(cfg)
	if err != nil {
		return errors.Wrap(err, "build driver")
	}
	defer closeStore()

	if serveMCP {
		return mcptool.New(driver, rules).Serve()
	}

	srv := server.New(driver, rules, logger.ComponentLogger("server"), cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst, cfg.Server.AllowedOrigins)

	if cfg.Rules.Watch {
		watcher, err := watch.New(cfg.Rules.BundleDir, logger.ComponentLogger("watch"))
		if err != nil {
			return errors.Wrap(err, "start rule bundle watcher")
		}
		watcher.OnReload(func(reloaded []rule.Rule) error {
			srv.SetRules(reloaded)
			return nil
		})
		watcher.Start()
		defer watcher.Stop()
	}

	port := cfg.Server.Port
	httpSrv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: srv.Handler()}

	errChan := make(chan error, 1)
	go func() {
		pterm.Info.Printf("listening on :%d\n", port)
		errChan <- httpSrv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "server failed")
		}
		return nil
	case <-sigChan:
		pterm.Info.Println("shutting down gracefully...")
		return httpSrv.Shutdown(context.Background())
	}
}
