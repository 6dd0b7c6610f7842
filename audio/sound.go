package audio

import "fmt"

// Sound identifies a sound effect
type Sound int

const (
	SoundNone Sound = iota
	// SoundRelease plays when a drawn stick is let go
	SoundRelease
	// SoundProgress ticks as the best overlap of the reported stick rises
	SoundProgress
	// SoundClear plays once per session on clear
	SoundClear
	// SoundFail plays when a stick drops out under the report failure policy
	SoundFail
)

var soundNames = map[Sound]string{
	SoundNone:     "none",
	SoundRelease:  "release",
	SoundProgress: "progress",
	SoundClear:    "clear",
	SoundFail:     "fail",
}

func (s Sound) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Sound(%d)", s)
}

// Player plays sound effects, implementations must be safe for concurrent use
type Player interface {
	Play(s Sound) bool
	SetMuted(muted bool)
	Muted() bool
	Close()
}
