// Package todo holds the item list, filter and theme state of the widget.
package todo

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// List owns the ordered items and every mutation on them.
type List struct {
	items []Item
	newID func() string
}

func NewList() *List {
	return &List{newID: uuid.NewString}
}

// Add appends a new active item. Text that is empty after trimming is ignored.
func (l *List) Add(text string) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, false
	}
	it := Item{ID: l.newID(), Text: text}
	l.items = append(l.items, it)
	return it, true
}

func (l *List) index(id string) int {
	return slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
}

func (l *List) Get(id string) (Item, bool) {
	i := l.index(id)
	if i < 0 {
		return Item{}, false
	}
	return l.items[i], true
}

// Toggle flips an item between active and completed.
func (l *List) Toggle(id string) (Item, error) {
	i := l.index(id)
	if i < 0 {
		return Item{}, ErrItemNotFound
	}
	if l.items[i].Removing {
		return l.items[i], ErrItemRemoving
	}
	l.items[i].Completed = !l.items[i].Completed
	return l.items[i], nil
}

// Delete starts removing an item. The item stays in the list, marked
// Removing, until Remove is called for it.
func (l *List) Delete(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrItemNotFound
	}
	l.items[i].Removing = true
	return nil
}

// Remove drops an item from the list. It reports whether anything was removed.
func (l *List) Remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// ClearCompleted deletes every completed item through Delete and returns the
// ids it started removing.
func (l *List) ClearCompleted() []string {
	var ids []string
	for _, it := range l.items {
		if it.Completed && !it.Removing {
			ids = append(ids, it.ID)
		}
	}
	for _, id := range ids {
		_ = l.Delete(id)
	}
	return ids
}

// Reorder moves draggedID to just before beforeID, or to the end when
// beforeID is empty.
func (l *List) Reorder(draggedID, beforeID string) error {
	from := l.index(draggedID)
	if from < 0 {
		return ErrItemNotFound
	}
	if beforeID != "" && l.index(beforeID) < 0 {
		return ErrItemNotFound
	}
	if draggedID == beforeID {
		return nil
	}
	moved := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	to := len(l.items)
	if beforeID != "" {
		to = l.index(beforeID)
	}
	l.items = slices.Insert(l.items, to, moved)
	return nil
}

// MoveUp swaps an item with its predecessor.
func (l *List) MoveUp(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrItemNotFound
	}
	if i == 0 {
		return nil
	}
	return l.Reorder(id, l.items[i-1].ID)
}

// MoveDown swaps an item with its successor.
func (l *List) MoveDown(id string) error {
	i := l.index(id)
	if i < 0 {
		return ErrItemNotFound
	}
	switch {
	case i == len(l.items)-1:
		return nil
	case i == len(l.items)-2:
		return l.Reorder(id, "")
	default:
		return l.Reorder(id, l.items[i+2].ID)
	}
}

// Items returns a copy of the items in display order.
func (l *List) Items() []Item {
	return slices.Clone(l.items)
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) CompletedCount() int {
	n := 0
	for _, it := range l.items {
		if it.Completed {
			n++
		}
	}
	return n
}

// ActiveCount is the number shown as "items left".
func (l *List) ActiveCount() int {
	return l.Len() - l.CompletedCount()
}
