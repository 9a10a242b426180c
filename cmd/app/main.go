package main

import (
	"go.uber.org/fx"

	"github.com/hm-yang2/board-share/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
