package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SeedPlan is the floor plan consumed once at startup: rooms and their
// initial base tables. It is static seed data, not runtime state.
type SeedPlan struct {
	Rooms []SeedRoom `json:"rooms"`
}

type SeedRoom struct {
	Name   string      `json:"name"`
	Tables []SeedTable `json:"tables"`
}

type SeedTable struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
}

// LoadSeedPlan resolves the seed plan from SEED_PLAN_PATH, then
// SEED_PLAN_JSON, then the built-in default roster.
func LoadSeedPlan(cfg ServerConfig) (SeedPlan, error) {
	raw, err := seedPlanJSON(cfg)
	if err != nil {
		return SeedPlan{}, err
	}
	if raw == "" {
		return DefaultSeedPlan(), nil
	}
	var plan SeedPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return SeedPlan{}, fmt.Errorf("parse seed plan: %w", err)
	}
	if err := validateSeedPlan(&plan); err != nil {
		return SeedPlan{}, err
	}
	return plan, nil
}

func seedPlanJSON(cfg ServerConfig) (string, error) {
	path := strings.TrimSpace(cfg.SeedPlanPath)
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read seed plan path %q: %w", path, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return strings.TrimSpace(cfg.SeedPlanJSON), nil
}

func validateSeedPlan(plan *SeedPlan) error {
	if len(plan.Rooms) == 0 {
		return fmt.Errorf("seed plan: no rooms")
	}
	seenRooms := map[string]bool{}
	seenTables := map[string]bool{}
	for ri := range plan.Rooms {
		room := &plan.Rooms[ri]
		room.Name = strings.TrimSpace(room.Name)
		if room.Name == "" {
			return fmt.Errorf("seed plan: room %d has no name", ri)
		}
		if seenRooms[room.Name] {
			return fmt.Errorf("seed plan: duplicate room %q", room.Name)
		}
		seenRooms[room.Name] = true
		for ti := range room.Tables {
			table := &room.Tables[ti]
			table.ID = strings.TrimSpace(table.ID)
			if table.ID == "" {
				return fmt.Errorf("seed plan: room %q table %d has no id", room.Name, ti)
			}
			if strings.Contains(table.ID, "+") {
				return fmt.Errorf("seed plan: table id %q must not contain %q", table.ID, "+")
			}
			if seenTables[table.ID] {
				return fmt.Errorf("seed plan: duplicate table id %q", table.ID)
			}
			seenTables[table.ID] = true
			if table.Capacity <= 0 {
				return fmt.Errorf("seed plan: table %q capacity must be positive, got %d", table.ID, table.Capacity)
			}
		}
	}
	return nil
}

// DefaultSeedPlan is the stock pub roster: four rooms, nineteen tables.
func DefaultSeedPlan() SeedPlan {
	return SeedPlan{Rooms: []SeedRoom{
		{Name: "GREENROOM", Tables: []SeedTable{
			{ID: "T1A", Capacity: 2},
			{ID: "T1B", Capacity: 2},
			{ID: "T2", Capacity: 4},
			{ID: "T3A", Capacity: 6},
			{ID: "T3B", Capacity: 4},
		}},
		{Name: "RESTAURANT", Tables: []SeedTable{
			{ID: "T4", Capacity: 4},
			{ID: "T5", Capacity: 4},
			{ID: "T6", Capacity: 4},
			{ID: "T7", Capacity: 4},
			{ID: "T8", Capacity: 4},
			{ID: "T9A", Capacity: 2},
			{ID: "T9B", Capacity: 2},
		}},
		{Name: "BOTTOM BAR", Tables: []SeedTable{
			{ID: "WINDOW", Capacity: 6},
			{ID: "BACK RIGHT", Capacity: 2},
			{ID: "LADS", Capacity: 4},
			{ID: "BLACKBOARD", Capacity: 4},
		}},
		{Name: "SMALL FUNCTION", Tables: []SeedTable{
			{ID: "SQUARE", Capacity: 2},
			{ID: "OVAL", Capacity: 6},
			{ID: "WOODEN", Capacity: 8},
		}},
	}}
}
