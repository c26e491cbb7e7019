package journeygraph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/config"
)

type GraphExporter struct {
	driver   neo4j.DriverWithContext
	database string
}

func Connect(ctx context.Context, cfg config.Neo4jConfig) (*GraphExporter, error) {
	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return &GraphExporter{
		driver:   driver,
		database: cfg.Database,
	}, nil
}

func (g *GraphExporter) Close(ctx context.Context) error {
	return g.driver.Close(ctx)
}

// Export replaces the graph with the catalogue's stops, roads and buses.
// Each bus is written in its own transaction.
func (g *GraphExporter) Export(ctx context.Context, transportCatalogue *catalogue.TransportCatalogue) error {
	session := g.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: g.database})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, "MATCH (a) DETACH DELETE a", map[string]any{}); err != nil {
		return err
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if err := runAll(ctx, tx, createStopQuery, StopParams(transportCatalogue)); err != nil {
			return nil, err
		}

		return nil, runAll(ctx, tx, createRoadQuery, RoadParams(transportCatalogue))
	})
	if err != nil {
		return err
	}

	log.Info().Int("stops", len(transportCatalogue.Stops())).Msg("Stops written to graph")

	for _, bus := range transportCatalogue.Buses() {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
			if _, err := tx.Run(ctx, createBusQuery, BusParams(bus)); err != nil {
				return nil, err
			}

			return nil, runAll(ctx, tx, createCallsAtQuery, CallsAtParams(bus, transportCatalogue))
		})
		if err != nil {
			return err
		}

		log.Debug().Str("bus", bus.Name).Msg("Bus written to graph")
	}

	log.Info().Int("buses", len(transportCatalogue.Buses())).Msg("Buses written to graph")

	return nil
}

func runAll(ctx context.Context, tx neo4j.ManagedTransaction, query string, params []map[string]any) error {
	for _, param := range params {
		if _, err := tx.Run(ctx, query, param); err != nil {
			return err
		}
	}

	return nil
}
