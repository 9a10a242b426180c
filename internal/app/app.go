package app

import (
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/config"
	"github.com/hm-yang2/board-share/internal/domain"
	"github.com/hm-yang2/board-share/internal/infrastructure"
)

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		infrastructure.Module,

		domain.Module,
	)
}
