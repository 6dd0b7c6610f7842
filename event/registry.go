package event

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct, nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", et)
}

func (et EventType) String() string { return GetEventName(et) }

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// PayloadMatches reports whether ev carries the payload type registered for its EventType
func PayloadMatches(ev GameEvent) bool {
	InitRegistry()
	want, ok := typeToPayload[ev.Type]
	if !ok {
		return ev.Payload == nil
	}
	got := reflect.TypeOf(ev.Payload)
	return got != nil && got.Kind() == reflect.Ptr && got.Elem() == want
}

// InitRegistry populates the registry with all game events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("Tick", EventTick, nil)
		RegisterType("EventStickReleased", EventStickReleased, &StickReleasedPayload{})
		RegisterType("EventFitProgress", EventFitProgress, &FitProgressPayload{})
		RegisterType("EventStageCleared", EventStageCleared, &StageClearedPayload{})
		RegisterType("EventStickFailed", EventStickFailed, &StickFailedPayload{})
		RegisterType("EventJudgeSuspend", EventJudgeSuspend, &JudgeSuspendPayload{})
		RegisterType("EventSoundRequest", EventSoundRequest, &SoundRequestPayload{})
		RegisterType("EventStageAdvance", EventStageAdvance, &StageAdvancePayload{})
		RegisterType("EventRunFinished", EventRunFinished, &RunFinishedPayload{})
	})
}
