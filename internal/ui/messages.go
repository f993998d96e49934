package ui

// scrollThumbMsg carries a deferred scroll-into-view effect. It is produced
// as a command from the transition that emitted it, so Bubble Tea delivers
// it only after the view reflecting that transition has been rendered.
type scrollThumbMsg struct {
	index int
}
