package layers

const (
	// OverlayWidthNumerator / OverlayWidthDivisor of the screen is given to
	// overlay content, clamped to the min and max below
	OverlayWidthNumerator = 3
	OverlayWidthDivisor   = 5

	OverlayMinWidth = 36
	OverlayMaxWidth = 80

	ContainerBorderWidth  = 1 // each side
	ContainerPaddingWidth = 2 // left and right
)
