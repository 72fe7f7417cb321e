package tui

// snapshotLoadedMsg reports the end of a presenter Load
type snapshotLoadedMsg struct {
	err error
}

// refreshTickMsg triggers the periodic reload
type refreshTickMsg struct{}
