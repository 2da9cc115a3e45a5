package todo

// Item is one row of the list. Its order is its position in the List.
type Item struct {
	ID        string
	Text      string
	Completed bool
	// Removing is set between Delete and Remove while the row slides out.
	Removing bool
}

// Active reports whether the item still counts towards the "items left" total.
func (it Item) Active() bool {
	return !it.Completed
}
