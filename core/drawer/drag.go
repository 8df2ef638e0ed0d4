package drawer

type DragAction int

const (
	DragIgnored DragAction = iota
	DragTracking
	DragLive
	DragRelease
	DragCancel
)

// DragResult tells the controller what to do with one sample. Position and
// CornerRadius are set for DragLive; Target and Clamping for DragRelease and
// DragCancel.
type DragResult struct {
	Action       DragAction
	Position     float64
	CornerRadius float64
	Target       float64
	Clamping     bool
	VelocityY    float64
}

// DragInterpreter turns gesture samples into live position writes or a
// terminal target. It relies on Began preceding Changed preceding exactly one
// Ended or Cancelled.
type DragInterpreter struct {
	lastRestY float64
}

func (d *DragInterpreter) LastRestY() float64 { return d.lastRestY }

func (d *DragInterpreter) Interpret(s GestureSample, currentY float64, m PositionModel) DragResult {
	switch s.Phase {
	case PhaseBegan:
		d.lastRestY = currentY
		return DragResult{Action: DragTracking}
	case PhaseChanged:
		d.lastRestY = currentY
		y := m.Clamp(currentY + s.TranslationDelta)
		return DragResult{Action: DragLive, Position: y, CornerRadius: m.CornerRadiusAt(y)}
	case PhaseEnded:
		velocityY := 0.0
		if h := m.ContainerHeight(); h > 0 {
			velocityY = s.Velocity / h
		}
		return DragResult{
			Action:    DragRelease,
			Target:    m.EndingPositionFor(currentY, velocityY),
			VelocityY: velocityY,
		}
	case PhaseCancelled:
		return DragResult{Action: DragCancel, Target: d.lastRestY, Clamping: true}
	default:
		return DragResult{Action: DragIgnored}
	}
}
