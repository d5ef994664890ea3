// Package planner is the command layer over the floor engine. One exclusive
// lock serializes every command and query: seat, release and combine touch
// the registry, ledger and assignment index together, and none of those may
// be observed mid-update.
package planner

import (
	"expvar"
	"strings"
	"sync"

	"table-planner/internal/floor"
	"table-planner/internal/journal"
)

var (
	seatTotal     = expvar.NewInt("planner_seat_total")
	releaseTotal  = expvar.NewInt("planner_release_total")
	combineTotal  = expvar.NewInt("planner_combine_total")
	optimizeTotal = expvar.NewInt("planner_optimize_total")
)

type Service struct {
	mu      sync.Mutex
	plan    *floor.Plan
	journal *journal.Journal
}

func NewService(plan *floor.Plan, jr *journal.Journal) *Service {
	return &Service{plan: plan, journal: jr}
}

func (s *Service) AddTable(req AddTableRequest) (*floor.TableStatus, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" || strings.Contains(id, floor.CombineSeparator) || req.Capacity <= 0 {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.plan.RoomKnown(req.Room) {
		return nil, ErrInvalidRequest
	}
	if err := s.plan.AddTable(id, req.Capacity, req.Room); err != nil {
		return nil, err
	}
	s.journal.Record(journal.KindTableAdded, "Added table %s with capacity %d to %s", id, req.Capacity, req.Room)
	st, err := s.plan.TableStatusByID(id)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *Service) RemoveTable(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.plan.RemoveTable(id); err != nil {
		return err
	}
	s.journal.Record(journal.KindTableRemoved, "Removed table %s", id)
	return nil
}

func (s *Service) AddGroup(req AddGroupRequest) (*AddGroupResponse, error) {
	if req.Size <= 0 {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.plan.AddGroup(req.Size, req.Name)
	s.journal.Record(journal.KindGroupAdded, "Added %s with %d people", g.Name, g.Size)
	return &AddGroupResponse{GroupID: g.ID, Name: g.Name, Size: g.Size}, nil
}

func (s *Service) Rename(groupID int, req RenameRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.plan.RenameGroup(groupID, name); err != nil {
		return err
	}
	s.journal.Record(journal.KindGroupRenamed, "Renamed group %d to %s", groupID, name)
	return nil
}

func (s *Service) Seat(groupID int, req SeatRequest) (*SeatResponse, error) {
	tableID := strings.TrimSpace(req.TableID)
	if tableID == "" {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.plan.Seat(groupID, tableID); err != nil {
		return nil, err
	}
	seatTotal.Add(1)
	s.journal.Record(journal.KindGroupSeated, "Seated group %d at table %s", groupID, tableID)
	return &SeatResponse{GroupID: groupID, TableID: tableID}, nil
}

func (s *Service) Release(groupID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.plan.Release(groupID); err != nil {
		return err
	}
	releaseTotal.Add(1)
	s.journal.Record(journal.KindGroupLeft, "Group %d marked as left", groupID)
	return nil
}

func (s *Service) Optimize() *OptimizeResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	placements := s.plan.Optimize()
	optimizeTotal.Add(1)
	for _, pl := range placements {
		if pl.Combined {
			combineTotal.Add(1)
			s.journal.Record(journal.KindTablesCombined,
				"Combined tables %s in %s for group %d",
				strings.Join(pl.Components, ", "), s.plan.RoomForTable(pl.TableID), pl.GroupID)
		}
	}
	s.journal.Record(journal.KindOptimized, "Optimized seating: placed %d group(s)", len(placements))
	return &OptimizeResponse{Placements: placements, Remaining: s.plan.WaitingGroups()}
}

func (s *Service) Tables() *TablesResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &TablesResponse{Items: s.plan.TableStatuses()}
}

func (s *Service) Table(id string) (*floor.TableStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.plan.TableStatusByID(id)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Groups filters by status: "waiting", "seated", or "" / "all" for both.
func (s *Service) Groups(status string) (*GroupsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch status {
	case "", "all":
		return &GroupsResponse{Items: s.plan.AllGroups()}, nil
	case floor.GroupWaiting:
		return &GroupsResponse{Items: s.plan.WaitingGroups()}, nil
	case floor.GroupSeated:
		all := s.plan.AllGroups()
		seated := make([]floor.GroupView, 0, len(all))
		for _, g := range all {
			if g.Status == floor.GroupSeated {
				seated = append(seated, g)
			}
		}
		return &GroupsResponse{Items: seated}, nil
	default:
		return nil, ErrInvalidRequest
	}
}

func (s *Service) Utilization() *UtilizationResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &UtilizationResponse{
		OverallPct: s.plan.OverallUtilization(),
		Rooms:      s.plan.RoomUtilizations(),
	}
}

func (s *Service) Rooms() *RoomsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &RoomsResponse{Items: s.plan.Rooms()}
}

func (s *Service) Journal(limit int) *JournalResponse {
	return &JournalResponse{Items: s.journal.Recent(limit)}
}
