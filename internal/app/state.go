package app

// State is a step of one invocation's lifecycle:
// Idle → ConfigBuilt → ContentLoaded → Searched → Done, or Failed.
type State int

const (
	Idle State = iota
	ConfigBuilt
	ContentLoaded
	Searched
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case ConfigBuilt:
		return "ConfigBuilt"
	case ContentLoaded:
		return "ContentLoaded"
	case Searched:
		return "Searched"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
