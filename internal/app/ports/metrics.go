package ports

import "worldforge/internal/domain/world"

type WorldMetrics interface {
	RecordGeneration(report world.GenerationReport)
	RecordPath(found bool)
	RecordReveal(revealed int)
}
