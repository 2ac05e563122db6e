package bootstrap

import (
	"booking-crm/internal/infra/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewDefault,
	),
)
