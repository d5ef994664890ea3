package floor

import (
	"sort"
	"strings"
)

// Placement records one group newly seated by Optimize or FindTableForGroup
// callers: where it went and whether tables were combined to fit it.
type Placement struct {
	GroupID    int      `json:"group_id"`
	TableID    string   `json:"table_id"`
	Combined   bool     `json:"combined"`
	Components []string `json:"components,omitempty"`
}

// Seat assigns a waiting group to a table. Co-seating is allowed: several
// groups may share a table up to its capacity. Base tables locked inside a
// live combination cannot be seated directly.
func (p *Plan) Seat(groupID int, tableID string) error {
	t, ok := p.tables[tableID]
	if !ok {
		return ErrTableNotFound
	}
	g, ok := p.waiting[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	if t.Combined && !t.isCombination() {
		return ErrInsufficientSpace
	}
	if g.Size > t.Capacity {
		return ErrGroupTooLarge
	}
	if t.Occupied && p.occupancy(tableID)+g.Size > t.Capacity {
		return ErrInsufficientSpace
	}
	p.assignments[tableID] = append(p.assignments[tableID], groupID)
	t.Occupied = true
	g.Table = tableID
	p.seated[groupID] = g
	delete(p.waiting, groupID)
	return nil
}

// Release removes a seated group from the venue ("mark left"). When the
// table empties it is marked free, and a combination is dismantled: every
// component returns to being a free base table and the virtual record is
// deleted. The group ceases to exist; it does not return to waiting.
func (p *Plan) Release(groupID int) error {
	g, ok := p.seated[groupID]
	if !ok {
		return ErrGroupNotFound
	}
	tableID := g.Table
	if list, ok := p.assignments[tableID]; ok {
		p.assignments[tableID] = removeGroupID(list, groupID)
		if len(p.assignments[tableID]) == 0 {
			if t, ok := p.tables[tableID]; ok {
				t.Occupied = false
				if t.isCombination() {
					p.dismantle(tableID)
				}
			}
		}
	}
	delete(p.seated, groupID)
	return nil
}

// FindTableForGroup looks for somewhere to put a party of the given size.
//
// Phase one scans free base tables in creation order and returns the first
// with enough capacity. Phase two partitions the free base tables by room
// (rooms in first-seen creation order) and, per room, sorts candidates by
// capacity descending; for each start index it extends a prefix until the
// summed capacity fits, so combinations anchor at the largest free table
// and prefer fewer, larger tables. Tables are never combined across rooms.
//
// A satisfying combination is reserved immediately: the components are
// locked, the virtual table registered with an empty assignment list, and
// its id returned for the caller to seat into.
func (p *Plan) FindTableForGroup(size int) (string, bool, []string, error) {
	for _, id := range p.order {
		t := p.tables[id]
		if t.Combined || t.Occupied {
			continue
		}
		if t.Capacity >= size {
			return id, false, nil, nil
		}
	}

	byRoom := map[string][]*Table{}
	var seenRooms []string
	for _, id := range p.order {
		t := p.tables[id]
		if t.Combined || t.Occupied {
			continue
		}
		if _, ok := byRoom[t.Room]; !ok {
			seenRooms = append(seenRooms, t.Room)
		}
		byRoom[t.Room] = append(byRoom[t.Room], t)
	}

	for _, room := range seenRooms {
		candidates := byRoom[room]
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Capacity > candidates[j].Capacity
		})
		for i := range candidates {
			sum := 0
			var picked []string
			for j := i; j < len(candidates); j++ {
				sum += candidates[j].Capacity
				picked = append(picked, candidates[j].ID)
				if sum >= size {
					comboID := p.reserveCombination(room, picked, sum)
					return comboID, true, picked, nil
				}
			}
		}
	}
	return "", false, nil, ErrNoTableAvailable
}

// Optimize batch-seats the waiting groups, largest first (ties by arrival
// order). Each group goes through the same find/seat path as interactive
// seating; groups nothing can fit stay waiting. This is a single greedy
// pass, not optimal packing: a large group seated early can consume the
// combinable space a later group in the same room would have needed.
func (p *Plan) Optimize() []Placement {
	queue := make([]*Group, 0, len(p.waiting))
	for _, g := range p.waiting {
		queue = append(queue, g)
	}
	sort.SliceStable(queue, func(i, j int) bool {
		if queue[i].Size != queue[j].Size {
			return queue[i].Size > queue[j].Size
		}
		return queue[i].ID < queue[j].ID
	})

	var placed []Placement
	for _, g := range queue {
		if _, stillWaiting := p.waiting[g.ID]; !stillWaiting {
			continue
		}
		tableID, combined, components, err := p.FindTableForGroup(g.Size)
		if err != nil {
			continue
		}
		if err := p.Seat(g.ID, tableID); err != nil {
			continue
		}
		placed = append(placed, Placement{
			GroupID:    g.ID,
			TableID:    tableID,
			Combined:   combined,
			Components: components,
		})
	}
	return placed
}

func (p *Plan) reserveCombination(room string, components []string, capacity int) string {
	for _, id := range components {
		p.tables[id].Occupied = true
		p.tables[id].Combined = true
	}
	comboID := strings.Join(components, CombineSeparator)
	p.tables[comboID] = &Table{
		ID:         comboID,
		Capacity:   capacity,
		Room:       room,
		Occupied:   true,
		Combined:   true,
		Components: append([]string(nil), components...),
	}
	p.combos[comboID] = append([]string(nil), components...)
	p.assignments[comboID] = []int{}
	p.order = append(p.order, comboID)
	return comboID
}

func removeGroupID(list []int, groupID int) []int {
	out := list[:0]
	for _, id := range list {
		if id != groupID {
			out = append(out, id)
		}
	}
	return out
}
