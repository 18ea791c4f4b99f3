package designer

import (
	"time"

	"github.com/quale-dev/tablesmith/grid"
)

// Config configures the designer Model.
type Config struct {
	// Table to edit. A default 3x3 table is created when nil.
	Table *grid.Table

	Style  Style
	KeyMap KeyMap

	// Clipboard receives the generated artifacts on the copy bindings.
	// Copying reports "clipboard unavailable" when nil.
	Clipboard Clipboard

	// OnChange is invoked after every applied mutation with the freshly
	// derived artifacts.
	OnChange func(ChangeEvent)

	// MotionThrottle drops drag-motion events arriving closer together
	// than this; it smooths drags and is not a correctness mechanism.
	// Zero means the default (~one frame); negative disables throttling.
	MotionThrottle time.Duration

	// ShowPreview opens the artifact preview pane at startup.
	ShowPreview bool
}

const defaultMotionThrottle = 16 * time.Millisecond
