package plan

import "errors"

var (
	// ErrMalformedResponse indicates the model output was not syntactically
	// JSON after unwrapping.
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrNoEpicsProduced indicates the parsed response has no array under
	// the "epics" key.
	ErrNoEpicsProduced = errors.New("no epics produced")
)
