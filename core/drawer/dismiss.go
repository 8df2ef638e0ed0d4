package drawer

// DismissalGate decides whether an outside tap dismisses the drawer.
type DismissalGate struct {
	enabled bool
	taps    int
}

func NewDismissalGate(cfg Configuration) DismissalGate {
	return DismissalGate{
		enabled: cfg.IsDismissableByOutsideDrawerTaps && cfg.NumberOfTapsForOutsideDrawerDismissal > 0,
		taps:    cfg.NumberOfTapsForOutsideDrawerDismissal,
	}
}

// Enabled is false when no tap recognizer should be installed at all.
func (g DismissalGate) Enabled() bool { return g.enabled }

func (g DismissalGate) TapCount() int { return g.taps }

// ShouldDismiss is true only for taps strictly above the drawer's top edge.
func (g DismissalGate) ShouldDismiss(tapY, currentY float64) bool {
	return g.enabled && tapY < currentY
}

// ExpansionGate decides whether a tap on the drawer itself should bring it
// to full expansion.
type ExpansionGate struct {
	enabled bool
	taps    int
}

func NewExpansionGate(cfg Configuration) ExpansionGate {
	return ExpansionGate{
		enabled: cfg.IsFullyPresentableByDrawerTaps && cfg.NumberOfTapsForFullDrawerPresentation > 0,
		taps:    cfg.NumberOfTapsForFullDrawerPresentation,
	}
}

func (g ExpansionGate) Enabled() bool { return g.enabled }

func (g ExpansionGate) TapCount() int { return g.taps }

func (g ExpansionGate) ShouldExpand(tapY, currentY, containerHeight float64) bool {
	return g.enabled && currentY > 0 && currentY < containerHeight && tapY >= currentY
}
