package logger

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(ProvideLevel),
	fx.Provide(ProvideLogger),
	fx.Provide(ProvideLoggerMiddleware),
)
