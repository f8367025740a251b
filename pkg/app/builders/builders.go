package builders

import (
	"github.com/google/wire"

	"github.com/dozr-cli/dozr/pkg/app"
	"github.com/dozr-cli/dozr/pkg/jitter"
	"github.com/dozr-cli/dozr/pkg/progress"
	ltime "github.com/dozr-cli/dozr/pkg/time"
	"github.com/dozr-cli/dozr/pkg/wait"
)

// Builders provides everything an Engine needs except the random source
// and the diagnostic writer, which depend on the invocation.
var Builders = wire.NewSet(
	app.NewInstance,
	ltime.NewWallWatch,
	wire.Bind(new(ltime.Watch), new(ltime.WallWatch)),
	ltime.NewWallSleeper,
	wire.Bind(new(ltime.Sleeper), new(ltime.WallSleeper)),
	jitter.NewRandomGenerator,
	wire.Bind(new(jitter.Generator), new(*jitter.RandomGenerator)),
	progress.NewConfigFromEnv,
	progress.NewReporter,
	wait.NewConfigFromEnv,
	wait.NewEngine,
)
