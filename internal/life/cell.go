package life

// Cell holds the life-state of one grid position. The zero value is dead.
type Cell struct {
	Alive bool
}

// ToggleState flips the cell between alive and dead.
func (c *Cell) ToggleState() {
	c.Alive = !c.Alive
}
