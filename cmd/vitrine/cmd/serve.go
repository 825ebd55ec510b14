package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/go-vitrine/vitrine/cmd/vitrine/internal/config"
	"github.com/go-vitrine/vitrine/pkg/components"
	"github.com/go-vitrine/vitrine/pkg/events"
	"github.com/go-vitrine/vitrine/pkg/option"
	"github.com/go-vitrine/vitrine/pkg/server"
	"github.com/go-vitrine/vitrine/pkg/session"
)

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve the sample greeting demo",
		Long: `Serve a sample demo: a greeting function wrapped in a textbox, a
checkbox, and a clock-backed checkbox, demonstrating predictions, select
events, value refresh, and sensitivity interpretation.

Configuration is read from vitrine.yaml in the project root, when present:

  app:
    name: My Demo
  server:
    addr: ":7860"
  log:
    level: info

Flags:
  --addr ADDR   Listen address (overrides vitrine.yaml)`,
		Usage: "vitrine serve [--addr ADDR]",
		Run:   runServe,
	})
}

func runServe(args []string) error {
	var addrFlag string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--addr":
			if i+1 >= len(args) {
				return fmt.Errorf("--addr requires an address")
			}
			addrFlag = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--addr="):
			addrFlag = strings.TrimPrefix(args[i], "--addr=")
		default:
			return fmt.Errorf("unknown argument %q", args[i])
		}
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		// Serving outside a module is fine; fall back to defaults.
		root = "."
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		resolved = &config.Resolved{AppName: "vitrine", Addr: ":7860"}
	}
	if addrFlag != "" {
		resolved.Addr = addrFlag
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(resolved.LogLevel)
	log, err := logCfg.Build()
	if err != nil {
		return err
	}
	defer log.Sync()

	demo, err := sampleDemo(log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("serving demo",
		zap.String("app", resolved.AppName),
		zap.String("addr", resolved.Addr))
	return server.New(demo, server.Config{Addr: resolved.Addr, Log: log}).ListenAndServe(ctx)
}

// sampleDemo wires the greeting function used by `vitrine serve`.
func sampleDemo(log *zap.Logger) (*session.Demo, error) {
	name := components.NewTextbox(components.TextboxConfig{
		Config:      components.Config{Label: option.Some("Name")},
		Placeholder: option.Some("Ada"),
	})
	formal := components.NewCheckbox(components.CheckboxConfig{
		Config: components.Config{
			Label: option.Some("Formal"),
			Info:  option.Some("Use a formal greeting"),
		},
	})
	afterNoon := components.NewCheckbox(components.CheckboxConfig{
		ValueFunc: func() bool { return time.Now().Hour() >= 12 },
		Config: components.Config{
			Label: option.Some("Afternoon"),
			Every: option.Some(time.Minute),
		},
	})
	greeting := components.NewTextbox(components.TextboxConfig{
		Config: components.Config{Label: option.Some("Greeting")},
	})

	formal.OnSelect(func(d events.SelectData) {
		log.Info("checkbox selected",
			zap.String("label", d.Value),
			zap.Bool("selected", d.Selected))
	})
	greet := func(_ context.Context, inputs []any) ([]any, error) {
		who := inputs[0].(string)
		if who == "" {
			who = "there"
		}
		opening := "Hi"
		if inputs[1].(bool) {
			opening = "Good day"
			if inputs[2].(bool) {
				opening = "Good afternoon"
			}
		}
		return []any{opening + ", " + who}, nil
	}

	return session.New(greet,
		[]components.Input{name, formal, afterNoon},
		[]components.Output{greeting},
		session.WithLogger(log))
}
