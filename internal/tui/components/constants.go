package components

const (
	cardChromeWidth = 4  // border + padding on both sides
	minTextWidth    = 20 // narrowest width text is wrapped to
	dateLayout      = "Jan 2 15:04"
)
