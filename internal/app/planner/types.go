package planner

import (
	"table-planner/internal/floor"
	"table-planner/internal/journal"
)

type AddTableRequest struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
	Room     string `json:"room"`
}

type AddGroupRequest struct {
	Size int    `json:"size"`
	Name string `json:"name,omitempty"`
}

type AddGroupResponse struct {
	GroupID int    `json:"group_id"`
	Name    string `json:"name"`
	Size    int    `json:"size"`
}

type SeatRequest struct {
	TableID string `json:"table_id"`
}

type SeatResponse struct {
	GroupID int    `json:"group_id"`
	TableID string `json:"table_id"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

type TablesResponse struct {
	Items []floor.TableStatus `json:"items"`
}

type GroupsResponse struct {
	Items []floor.GroupView `json:"items"`
}

type OptimizeResponse struct {
	Placements []floor.Placement `json:"placements"`
	Remaining  []floor.GroupView `json:"remaining"`
}

type UtilizationResponse struct {
	OverallPct float64                 `json:"overall_pct"`
	Rooms      []floor.RoomUtilization `json:"rooms"`
}

type RoomsResponse struct {
	Items []floor.RoomDef `json:"items"`
}

type JournalResponse struct {
	Items []journal.Entry `json:"items"`
}
