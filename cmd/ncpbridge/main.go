package main

import (
	"github.com/joeydtaylor/ncpbridge/pkg/serverfx"
	"go.uber.org/fx"
)

func main() {
	fx.New(serverfx.Module()).Run()
}
