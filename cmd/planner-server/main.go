package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"table-planner/internal/app/planner"
	"table-planner/internal/config"
	"table-planner/internal/floor"
	"table-planner/internal/journal"
	"table-planner/internal/logging"
	httptransport "table-planner/internal/transport/http"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}
	seed, err := config.LoadSeedPlan(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load seed plan failed")
	}

	plan, err := buildPlan(seed)
	if err != nil {
		log.Fatal().Err(err).Msg("seed floor plan failed")
	}
	jr := journal.New(cfg.JournalCapacity)
	svc := planner.NewService(plan, jr)
	r := httptransport.NewRouter(svc, cfg)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().
		Str("addr", cfg.HTTPAddr).
		Int("rooms", len(seed.Rooms)).
		Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

func buildPlan(seed config.SeedPlan) (*floor.Plan, error) {
	catalog := make([]floor.RoomDef, 0, len(seed.Rooms))
	for _, room := range seed.Rooms {
		def := floor.RoomDef{Name: room.Name}
		for _, table := range room.Tables {
			def.Tables = append(def.Tables, table.ID)
		}
		catalog = append(catalog, def)
	}
	plan := floor.NewPlan(catalog)
	for _, room := range seed.Rooms {
		for _, table := range room.Tables {
			if err := plan.AddTable(table.ID, table.Capacity, room.Name); err != nil {
				return nil, err
			}
		}
	}
	return plan, nil
}
