package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap/zapcore"

	"github.com/RegistryAccord/registryaccord-specs/internal/config"
	"github.com/RegistryAccord/registryaccord-specs/internal/core/observability/log"
	"github.com/RegistryAccord/registryaccord-specs/internal/core/validator"
)

// App is everything the command needs for one validation run.
type App struct {
	Validator *validator.Validator
	Logger    *log.Logger
}

var AppSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	validator.New,
	wire.Struct(new(App), "*"),
)

// ProvideLogger builds the logger described by cfg. A nil logOutput writes
// to stderr.
func ProvideLogger(cfg *config.Config, logOutput zapcore.WriteSyncer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(log.Options{
		Level:  level,
		Format: cfg.Log.Format,
		Output: logOutput,
	})
}
