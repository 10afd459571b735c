package schedule

import "context"

// Page is the state of one schedule-games page view. Rendering reads it and
// nothing else.
type Page struct {
	Form     Form
	Feedback Feedback

	dirty bool
}

// NewPage starts a page with the form prefilled and no feedback.
func NewPage(defaults Form) *Page {
	return &Page{Form: defaults}
}

// Submit runs one submission and overwrites the feedback with its outcome.
// Errors are kept as display text only.
func (p *Page) Submit(ctx context.Context, s *Submitter, form Form) {
	p.Form = form
	result, err := s.Submit(ctx, form)
	if err != nil {
		p.Feedback = Failure(err.Error())
	} else {
		p.Feedback = Success(result)
	}
	p.dirty = true
}

// Dirty reports whether the page changed since it was last drawn.
func (p *Page) Dirty() bool {
	return p.dirty
}

func (p *Page) MarkDrawn() {
	p.dirty = false
}
