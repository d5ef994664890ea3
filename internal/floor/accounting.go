package floor

import "sort"

// Occupant is one seated party shown in a table status line.
type Occupant struct {
	GroupID int    `json:"group_id"`
	Name    string `json:"name"`
	Size    int    `json:"size"`
}

// TableStatus is the read-only view of one table.
type TableStatus struct {
	ID             string     `json:"id"`
	Room           string     `json:"room"`
	Capacity       int        `json:"capacity"`
	Combined       bool       `json:"combined"`
	Components     []string   `json:"components,omitempty"`
	Occupied       bool       `json:"occupied"`
	Occupants      []Occupant `json:"occupants"`
	Occupancy      int        `json:"occupancy"`
	UtilizationPct float64    `json:"utilization_pct"`
}

// Group states reported by AllGroups.
const (
	GroupWaiting = "waiting"
	GroupSeated  = "seated"
)

// GroupView is the read-only view of one group.
type GroupView struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Status string `json:"status"`
	Table  string `json:"table,omitempty"`
}

// RoomUtilization aggregates capacity and occupancy over a room's tables.
type RoomUtilization struct {
	Room           string  `json:"room"`
	Capacity       int     `json:"capacity"`
	Occupancy      int     `json:"occupancy"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// occupancy sums the sizes of the groups currently assigned to a table.
func (p *Plan) occupancy(tableID string) int {
	total := 0
	for _, gid := range p.assignments[tableID] {
		if g, ok := p.seated[gid]; ok {
			total += g.Size
		}
	}
	return total
}

// TableUtilization returns a table's occupancy as a percentage of its
// capacity. Unknown ids and zero capacities report 0, never an error.
func (p *Plan) TableUtilization(id string) float64 {
	t, ok := p.tables[id]
	if !ok || t.Capacity == 0 {
		return 0
	}
	return float64(p.occupancy(id)) / float64(t.Capacity) * 100
}

// OverallUtilization returns total occupancy over total capacity across
// every registered table, 0 when there is no capacity at all.
func (p *Plan) OverallUtilization() float64 {
	totalCapacity := 0
	totalOccupancy := 0
	for id, t := range p.tables {
		totalCapacity += t.Capacity
		totalOccupancy += p.occupancy(id)
	}
	if totalCapacity == 0 {
		return 0
	}
	return float64(totalOccupancy) / float64(totalCapacity) * 100
}

// RoomForTable resolves the room a table sits in. The table record's own
// room field wins, so synthesized combination ids resolve correctly; the
// catalog reverse lookup only covers ids with no live record.
func (p *Plan) RoomForTable(id string) string {
	if t, ok := p.tables[id]; ok && t.Room != "" {
		return t.Room
	}
	for _, room := range p.roomOrder {
		for _, tableID := range p.rooms[room] {
			if tableID == id {
				return room
			}
		}
	}
	return RoomUnknown
}

// TableStatuses reports every table sorted by id.
func (p *Plan) TableStatuses() []TableStatus {
	ids := make([]string, 0, len(p.tables))
	for id := range p.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]TableStatus, 0, len(ids))
	for _, id := range ids {
		out = append(out, p.tableStatus(id))
	}
	return out
}

// TableStatusByID reports a single table.
func (p *Plan) TableStatusByID(id string) (TableStatus, error) {
	if _, ok := p.tables[id]; !ok {
		return TableStatus{}, ErrTableNotFound
	}
	return p.tableStatus(id), nil
}

func (p *Plan) tableStatus(id string) TableStatus {
	t := p.tables[id]
	occupants := make([]Occupant, 0, len(p.assignments[id]))
	occupancy := 0
	for _, gid := range p.assignments[id] {
		g, ok := p.seated[gid]
		if !ok {
			continue
		}
		occupants = append(occupants, Occupant{GroupID: g.ID, Name: g.Name, Size: g.Size})
		occupancy += g.Size
	}
	return TableStatus{
		ID:             t.ID,
		Room:           t.Room,
		Capacity:       t.Capacity,
		Combined:       t.Combined,
		Components:     append([]string(nil), t.Components...),
		Occupied:       t.Occupied,
		Occupants:      occupants,
		Occupancy:      occupancy,
		UtilizationPct: p.TableUtilization(id),
	}
}

// WaitingGroups lists the groups still waiting, oldest first.
func (p *Plan) WaitingGroups() []GroupView {
	return p.groupViews(p.waiting, GroupWaiting)
}

// AllGroups lists every group, waiting first then seated, each oldest first.
func (p *Plan) AllGroups() []GroupView {
	out := p.groupViews(p.waiting, GroupWaiting)
	return append(out, p.groupViews(p.seated, GroupSeated)...)
}

func (p *Plan) groupViews(m map[int]*Group, status string) []GroupView {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]GroupView, 0, len(ids))
	for _, id := range ids {
		g := m[id]
		out = append(out, GroupView{ID: g.ID, Name: g.Name, Size: g.Size, Status: status, Table: g.Table})
	}
	return out
}

// RoomUtilizations aggregates utilization per room: catalog rooms in
// declaration order, then any rooms seen only on table records, sorted.
func (p *Plan) RoomUtilizations() []RoomUtilization {
	capacity := map[string]int{}
	occupancy := map[string]int{}
	for id, t := range p.tables {
		capacity[t.Room] += t.Capacity
		occupancy[t.Room] += p.occupancy(id)
	}

	rooms := append([]string(nil), p.roomOrder...)
	known := map[string]bool{}
	for _, room := range rooms {
		known[room] = true
	}
	var extra []string
	for room := range capacity {
		if !known[room] {
			extra = append(extra, room)
		}
	}
	sort.Strings(extra)
	rooms = append(rooms, extra...)

	out := make([]RoomUtilization, 0, len(rooms))
	for _, room := range rooms {
		pct := 0.0
		if capacity[room] > 0 {
			pct = float64(occupancy[room]) / float64(capacity[room]) * 100
		}
		out = append(out, RoomUtilization{
			Room:           room,
			Capacity:       capacity[room],
			Occupancy:      occupancy[room],
			UtilizationPct: pct,
		})
	}
	return out
}

// Rooms returns the static catalog in declaration order.
func (p *Plan) Rooms() []RoomDef {
	out := make([]RoomDef, 0, len(p.roomOrder))
	for _, room := range p.roomOrder {
		out = append(out, RoomDef{Name: room, Tables: append([]string(nil), p.rooms[room]...)})
	}
	return out
}

// RoomKnown reports whether the catalog declares the room.
func (p *Plan) RoomKnown(name string) bool {
	_, ok := p.rooms[name]
	return ok
}
