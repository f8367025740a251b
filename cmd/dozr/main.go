package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/dozr-cli/dozr/internal/config"
	"github.com/dozr-cli/dozr/pkg/app"
	ltime "github.com/dozr-cli/dozr/pkg/time"
	"github.com/dozr-cli/dozr/pkg/wait"
)

type dependencies struct {
	app    *app.Instance
	engine *wait.Engine
}

func newDependencies(app *app.Instance, engine *wait.Engine) *dependencies {
	return &dependencies{
		app:    app,
		engine: engine,
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return app.ExitFailure
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return app.ExitFailure
	}
	log.SetLevel(level)

	opts := newOptions(cfg, ltime.NewWallWatch(), stdout, stderr)
	cmd := newRootCmd(opts)
	cmd.SetArgs(args)
	err = cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
	}
	return app.ExitCode(err)
}
