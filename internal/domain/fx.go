// Package domain contains all domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/internal/domain/auth"
	"github.com/hm-yang2/board-share/internal/domain/channel"
	"github.com/hm-yang2/board-share/internal/domain/link"
	"github.com/hm-yang2/board-share/internal/domain/permission"
	"github.com/hm-yang2/board-share/internal/domain/user"
)

// Module aggregates all domain modules for fx dependency injection
var Module = fx.Module("domain",
	permission.Module,
	user.Module,
	channel.Module,
	link.Module,
	auth.Module,
)
