package floor

// CombineSeparator joins component ids into a combined-table id. Base table
// ids must never contain it.
const CombineSeparator = "+"

// RoomUnknown is reported for ids no room claims.
const RoomUnknown = "Unknown"

// Table is either a base table or a virtual combination of base tables.
// A combination exists only while occupied and is owned by the engine:
// Components is non-empty exactly for combinations, and while a combination
// is live every component is marked Occupied and Combined so it cannot be
// seated or recombined on its own.
type Table struct {
	ID         string
	Capacity   int
	Room       string
	Occupied   bool
	Combined   bool
	Components []string
}

// isCombination reports whether t is a virtual combined table, as opposed to
// a base table that is merely locked as a component of one.
func (t *Table) isCombination() bool {
	return len(t.Components) > 0
}

// Group is a party of guests. Table is set only while seated.
type Group struct {
	ID    int
	Name  string
	Size  int
	Table string
}

// RoomDef is one room of the static catalog: its name and the base table
// ids it contains.
type RoomDef struct {
	Name   string   `json:"name"`
	Tables []string `json:"tables"`
}
