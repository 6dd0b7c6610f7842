package render

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// RenderPriority determines render order, lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityTarget
	PriorityGuide
	PriorityEntities
	PriorityPreview
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
