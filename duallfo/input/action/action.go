package action

// Action represents input actions that can be performed on the monitor
type Action int

const (
	MonitorQuit Action = iota
	MonitorPauseToggle
	MonitorStepUp
	MonitorStepDown
	MonitorReset
)

func (a Action) String() string {
	switch a {
	case MonitorQuit:
		return "quit"
	case MonitorPauseToggle:
		return "pause"
	case MonitorStepUp:
		return "step-up"
	case MonitorStepDown:
		return "step-down"
	case MonitorReset:
		return "reset"
	default:
		return "unknown"
	}
}
