package event

import (
	"time"

	"github.com/lixenwraith/stick-fit/audio"
	"github.com/lixenwraith/stick-fit/judge"
	"github.com/lixenwraith/stick-fit/vmath"
)

// StickReleasedPayload contains the world segment of a released stick
type StickReleasedPayload struct {
	Segment vmath.Segment
}

// FitProgressPayload wraps one judge progress message
type FitProgressPayload struct {
	Progress judge.FitProgress
}

// StageClearedPayload contains the clear notification and the stage it belongs to
type StageClearedPayload struct {
	Stage   string
	Cleared judge.Cleared
}

// StickFailedPayload identifies the dropped stick
type StickFailedPayload struct {
	Record judge.RecordID
}

// JudgeSuspendPayload contains the requested suspension state
type JudgeSuspendPayload struct {
	Suspended bool
}

// SoundRequestPayload contains the sound effect to play
type SoundRequestPayload struct {
	Sound audio.Sound
}

// StageAdvancePayload selects the stage to load
// Restart reloads the current stage instead of moving on
type StageAdvancePayload struct {
	Restart bool
}

// RunFinishedPayload contains score attack results
type RunFinishedPayload struct {
	Cleared int
	Elapsed time.Duration
}
