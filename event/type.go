package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the zero value, never pushed
	EventTick EventType = iota

	// EventStickReleased signals the player let go of a drawn stick
	// Trigger: Game.Release from the input goroutine
	// Consumer: StickHandler | Payload: *StickReleasedPayload
	EventStickReleased

	// EventFitProgress carries the judge progress for the reported stick
	// Trigger: judge sink during the judgment tick
	// Consumer: HUD, ProgressSoundHandler | Payload: *FitProgressPayload
	EventFitProgress

	// EventStageCleared signals the one-shot clear of the session
	// Trigger: judge sink
	// Consumer: ClearHandler | Payload: *StageClearedPayload
	EventStageCleared

	// EventStickFailed signals a stick fell past the floor without clearing
	// Trigger: judge sink under the report failure policy
	// Consumer: FailHandler | Payload: *StickFailedPayload
	EventStickFailed

	// EventJudgeSuspend toggles judgment while the target is hidden
	// Trigger: blink gate visibility change
	// Consumer: SuspendHandler | Payload: *JudgeSuspendPayload
	EventJudgeSuspend

	// EventSoundRequest requests sound effect playback
	// Trigger: handlers requiring audio feedback
	// Consumer: SoundHandler | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventStageAdvance requests loading the next stage
	// Trigger: clear cut-in timer, failure restart
	// Consumer: StageHandler | Payload: *StageAdvancePayload
	EventStageAdvance

	// EventRunFinished signals the end of a score attack run
	// Trigger: run timer expiry
	// Consumer: RunHandler | Payload: *RunFinishedPayload
	EventRunFinished
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
