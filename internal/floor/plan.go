package floor

import (
	"fmt"
	"strings"
)

// Plan holds the whole seating state of a venue: the table registry, the
// group ledger (waiting and seated, always disjoint), the per-table
// assignment index, and the static room catalog.
//
// Plan is not safe for concurrent use; callers serialize commands with one
// exclusive lock around each operation.
type Plan struct {
	tables      map[string]*Table
	order       []string // table ids in creation order, drives search determinism
	assignments map[string][]int
	waiting     map[int]*Group
	seated      map[int]*Group
	nextGroupID int
	combos      map[string][]string
	rooms       map[string][]string
	roomOrder   []string
}

// NewPlan builds an empty plan over a fixed room catalog. The catalog is
// never mutated afterwards; tables are added separately.
func NewPlan(catalog []RoomDef) *Plan {
	p := &Plan{
		tables:      map[string]*Table{},
		assignments: map[string][]int{},
		waiting:     map[int]*Group{},
		seated:      map[int]*Group{},
		nextGroupID: 1,
		combos:      map[string][]string{},
		rooms:       map[string][]string{},
	}
	for _, room := range catalog {
		if _, ok := p.rooms[room.Name]; ok {
			continue
		}
		p.rooms[room.Name] = append([]string(nil), room.Tables...)
		p.roomOrder = append(p.roomOrder, room.Name)
	}
	return p
}

// AddTable registers a new base table. Ids are permanent and must not use
// the combination separator.
func (p *Plan) AddTable(id string, capacity int, room string) error {
	if strings.TrimSpace(id) == "" || strings.Contains(id, CombineSeparator) {
		return ErrInvalidTableID
	}
	if _, ok := p.tables[id]; ok {
		return ErrDuplicateTable
	}
	p.tables[id] = &Table{ID: id, Capacity: capacity, Room: room}
	p.order = append(p.order, id)
	return nil
}

// RemoveTable deletes a table. Every group seated there is moved back to
// waiting first. Removing a base table that is locked inside a live
// combination dismantles the combination (its occupants are re-queued and
// the other components freed) before the table itself goes away.
func (p *Plan) RemoveTable(id string) error {
	t, ok := p.tables[id]
	if !ok {
		return ErrTableNotFound
	}
	if t.Combined && !t.isCombination() {
		if comboID := p.comboContaining(id); comboID != "" {
			p.evict(comboID)
			p.dismantle(comboID)
		}
	}
	if t.isCombination() {
		p.evict(id)
		p.dismantle(id)
		return nil
	}
	p.evict(id)
	delete(p.assignments, id)
	delete(p.tables, id)
	p.dropFromOrder(id)
	return nil
}

// AddGroup creates a waiting group with the next monotonic id. An empty
// name gets the default "Group {id}" label.
func (p *Plan) AddGroup(size int, name string) *Group {
	id := p.nextGroupID
	p.nextGroupID++
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Group %d", id)
	}
	g := &Group{ID: id, Name: name, Size: size}
	p.waiting[id] = g
	return g
}

// RenameGroup renames a group in place, whichever state it is in.
func (p *Plan) RenameGroup(id int, name string) error {
	if g, ok := p.waiting[id]; ok {
		g.Name = name
		return nil
	}
	if g, ok := p.seated[id]; ok {
		g.Name = name
		return nil
	}
	return ErrGroupNotFound
}

// evict moves every group assigned to tableID back to waiting and clears
// the assignment list.
func (p *Plan) evict(tableID string) {
	for _, gid := range p.assignments[tableID] {
		if g, ok := p.seated[gid]; ok {
			g.Table = ""
			p.waiting[gid] = g
			delete(p.seated, gid)
		}
	}
	p.assignments[tableID] = nil
	if t, ok := p.tables[tableID]; ok && !t.isCombination() {
		t.Occupied = false
	}
}

// dismantle tears a combination down: components become free base tables
// again and the virtual record disappears.
func (p *Plan) dismantle(comboID string) {
	for _, compID := range p.combos[comboID] {
		if comp, ok := p.tables[compID]; ok {
			comp.Occupied = false
			comp.Combined = false
		}
	}
	delete(p.tables, comboID)
	delete(p.combos, comboID)
	delete(p.assignments, comboID)
	p.dropFromOrder(comboID)
}

func (p *Plan) comboContaining(tableID string) string {
	for comboID, comps := range p.combos {
		for _, compID := range comps {
			if compID == tableID {
				return comboID
			}
		}
	}
	return ""
}

func (p *Plan) dropFromOrder(id string) {
	for i, v := range p.order {
		if v == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			return
		}
	}
}
