package clients

// Outcome tags the result of a remote lookup.
type Outcome int

const (
	// Found means the remote service returned the entity.
	Found Outcome = iota
	// NotFound means the remote service answered 404.
	NotFound
	// TransportError covers network failures, undecodable bodies and any
	// status other than 2xx or 404.
	TransportError
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case TransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of a remote lookup. Value is set only for
// Found, Err only for TransportError.
type Result[T any] struct {
	Outcome Outcome
	Value   *T
	Err     error
}

// FoundResult wraps a found value.
func FoundResult[T any](v *T) Result[T] {
	return Result[T]{Outcome: Found, Value: v}
}

// NotFoundResult reports a missing entity.
func NotFoundResult[T any]() Result[T] {
	return Result[T]{Outcome: NotFound}
}

// ErrorResult reports a transport failure.
func ErrorResult[T any](err error) Result[T] {
	return Result[T]{Outcome: TransportError, Err: err}
}
