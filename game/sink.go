package game

import (
	"github.com/lixenwraith/stick-fit/event"
	"github.com/lixenwraith/stick-fit/judge"
)

// queueSink forwards judge output to the event queue; handlers run on the next dispatch of the same tick
type queueSink struct {
	queue *event.EventQueue
	stage string
	frame *int64
}

func (s *queueSink) Progress(p judge.FitProgress) {
	if p.Failed {
		s.queue.Emit(event.EventStickFailed, &event.StickFailedPayload{Record: p.Record}, *s.frame)
		return
	}
	s.queue.Emit(event.EventFitProgress, &event.FitProgressPayload{Progress: p}, *s.frame)
}

func (s *queueSink) Cleared(c judge.Cleared) {
	s.queue.Emit(event.EventStageCleared, &event.StageClearedPayload{Stage: s.stage, Cleared: c}, *s.frame)
}
