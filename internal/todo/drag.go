package todo

import "math"

// Slot is the vertical position of a rendered row.
type Slot struct {
	ID  string
	Mid float64
}

// DropTarget picks the item the dragged row should be placed before: the
// nearest row whose midpoint lies below the pointer at y. The dragged row
// itself is ignored. An empty result means "append to the end".
func DropTarget(slots []Slot, draggedID string, y float64) string {
	best := ""
	closest := math.Inf(-1)
	for _, s := range slots {
		if s.ID == draggedID {
			continue
		}
		offset := y - s.Mid
		if offset < 0 && offset > closest {
			closest = offset
			best = s.ID
		}
	}
	return best
}
