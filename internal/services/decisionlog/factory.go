package decisionlog

import (
	"fmt"

	"shellwatch/internal/config"
	"shellwatch/internal/repositories"

	"gorm.io/gorm"
)

// Open builds the sink named by cfg.DecisionLogBackend. The returned DB is
// non-nil only for the postgres backend and is owned by the caller.
func Open(cfg config.Config) (Sink, *gorm.DB, error) {
	switch cfg.DecisionLogBackend {
	case config.DecisionLogStub, "":
		return NewStubSink(), nil, nil
	case config.DecisionLogPostgres:
		db, err := repositories.InitDB(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresSink(repositories.NewDecisionLogRepository(db)), db, nil
	case config.DecisionLogKafka:
		return NewKafkaSink(NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic)), nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.DecisionLogBackend)
	}
}
