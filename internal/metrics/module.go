package metrics

import "go.uber.org/fx"

// Module provides the process-wide metrics set.
var Module = fx.Provide(New)
