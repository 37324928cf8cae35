package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"autoforge/config"
	"autoforge/forge"
	"autoforge/render"
	"autoforge/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	idea := flag.String("idea", "", "idea to forge; read from stdin when empty")
	format := flag.String("format", "json", "output format: json, md, html or flat")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides server.addr)")
	verbose := flag.Bool("v", false, "enable debug logs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.Logging, *verbose)

	if *serve {
		if *addr != "" {
			cfg.Server.Addr = *addr
		}
		if err := runServer(cfg, logger); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	text := *idea
	if text == "" && flag.NArg() > 0 {
		text = strings.Join(flag.Args(), " ")
	}
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text = string(data)
	}

	logger.Debug("forging idea", "format", *format, "idea_len", len(text))
	if err := runOnce(os.Stdout, text, *format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runOnce(w io.Writer, idea, format string) error {
	res, err := forge.Generate(idea)
	if err != nil {
		return err
	}

	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	case "md", "markdown":
		_, err := io.WriteString(w, render.Markdown(res))
		return err
	case "html", "flat":
		out, err := render.HTML(res, render.Options{Flatten: format == "flat"})
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown format %q (want json, md, html or flat)", format)
	}
}

func runServer(cfg config.Config, logger *slog.Logger) error {
	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting web server", "addr", cfg.Server.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
