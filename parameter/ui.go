package parameter

// Viewport and HUD
const (
	// WorldCellScale is the number of terminal columns per world unit
	WorldCellScale = 4.0

	// CellAspect compensates for terminal cells being about twice as tall as wide
	CellAspect = 2.0

	// HUDRows is the number of rows reserved at the top for text
	HUDRows = 2

	// DebugLogDir and DebugLogFile locate the -debug log output
	DebugLogDir  = "logs"
	DebugLogFile = "stick-fit.log"

	// DebugLogMaxSize triggers rotation of the debug log at startup
	DebugLogMaxSize = 10 * 1024 * 1024
)
