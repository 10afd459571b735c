package schedule

import "arbiter/internal/pairing"

type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackSuccess
	FeedbackFailure
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackSuccess:
		return "success"
	case FeedbackFailure:
		return "failure"
	default:
		return "none"
	}
}

// Feedback is the outcome of the last submission: nothing yet, a created
// batch, or a message to show.
type Feedback struct {
	kind    FeedbackKind
	result  pairing.BulkPairing
	message string
}

func Success(result pairing.BulkPairing) Feedback {
	return Feedback{kind: FeedbackSuccess, result: result}
}

func Failure(message string) Feedback {
	return Feedback{kind: FeedbackFailure, message: message}
}

func (f Feedback) Kind() FeedbackKind {
	return f.kind
}

func (f Feedback) Result() (pairing.BulkPairing, bool) {
	return f.result, f.kind == FeedbackSuccess
}

func (f Feedback) Message() (string, bool) {
	return f.message, f.kind == FeedbackFailure
}
