// Package page keeps the ordered elements the root model draws.
package page

// Element is anything placed on the page. Elements are compared by identity,
// so they must be pointers or other comparable values.
type Element any

// Page is an ordered list of elements
type Page struct {
	elements []Element
}

// New creates a page holding elements in order
func New(elements ...Element) *Page {
	return &Page{elements: append([]Element(nil), elements...)}
}

// Append adds el at the end
func (p *Page) Append(el Element) {
	p.elements = append(p.elements, el)
}

// InsertAfter places el directly after anchor. When anchor is not on the
// page, el is appended.
func (p *Page) InsertAfter(anchor, el Element) {
	i := p.IndexOf(anchor)
	if i < 0 {
		p.Append(el)
		return
	}
	p.elements = append(p.elements, nil)
	copy(p.elements[i+2:], p.elements[i+1:])
	p.elements[i+1] = el
}

// Remove takes el off the page. It reports whether el was present.
func (p *Page) Remove(el Element) bool {
	i := p.IndexOf(el)
	if i < 0 {
		return false
	}
	p.elements = append(p.elements[:i], p.elements[i+1:]...)
	return true
}

// IndexOf returns the position of el, or -1
func (p *Page) IndexOf(el Element) int {
	for i, e := range p.elements {
		if e == el {
			return i
		}
	}
	return -1
}

// Elements returns the elements in order
func (p *Page) Elements() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// Len returns the number of elements
func (p *Page) Len() int {
	return len(p.elements)
}
