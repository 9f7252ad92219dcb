package forms

// pristine remembers a value set programmatically. The bubbles widgets
// normalize what they are given (tabs, line endings), so the exact value
// reads back until the widget content changes.
type pristine struct {
	raw   string
	shown string
}

func (p *pristine) remember(raw, shown string) {
	p.raw, p.shown = raw, shown
}

func (p pristine) value(current string) string {
	if current == p.shown {
		return p.raw
	}
	return current
}
