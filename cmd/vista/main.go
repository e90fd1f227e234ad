package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/airvista/vista/internal/app"
	"github.com/airvista/vista/internal/prefs"
	"github.com/airvista/vista/internal/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "preferences file path (default "+prefs.DefaultPath()+")")
	sessionPath := flag.String("session", "", "session file path (default "+session.DefaultPath()+")")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		PrefsPath:   *prefsPath,
		SessionPath: *sessionPath,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "vista: %v\n", err)
		return 1
	}
	return 0
}
