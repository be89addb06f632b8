//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"go.uber.org/zap/zapcore"

	"github.com/RegistryAccord/registryaccord-specs/internal/config"
)

func InitializeApp(cfg *config.Config, logOutput zapcore.WriteSyncer) (*App, error) {
	wire.Build(AppSet)
	return nil, nil
}
