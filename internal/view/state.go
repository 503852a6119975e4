package view

// Status is the loading state of a page.
//
//	idle -> loading -> ready | not found | failed | denied
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	// StatusNotFound means a required resource does not exist (HTTP 404).
	StatusNotFound
	// StatusFailed means a fetch failed for any other reason.
	StatusFailed
	// StatusDenied means the session may not open the page (editing another
	// user's review).
	StatusDenied
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusNotFound:
		return "not found"
	case StatusFailed:
		return "failed"
	case StatusDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// State is the result of loading a page. Data is meaningful only when Status
// is StatusReady; Err is set for StatusNotFound and StatusFailed.
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Ready wraps loaded data.
func Ready[T any](data T) State[T] {
	return State[T]{Status: StatusReady, Data: data}
}

// Loading is the initial state of every page.
func Loading[T any]() State[T] {
	return State[T]{Status: StatusLoading}
}

// OK reports whether the page can render its data.
func (s State[T]) OK() bool {
	return s.Status == StatusReady
}
