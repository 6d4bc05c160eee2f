package parameter

import "time"

// Audio cue timing
const (
	AudioSampleRate = 48000

	CueCorrectDuration = 220 * time.Millisecond
	CueCorrectAttack   = 5 * time.Millisecond
	CueCorrectRelease  = 150 * time.Millisecond

	CueWrongDuration = 300 * time.Millisecond
	CueWrongAttack   = 2 * time.Millisecond
	CueWrongRelease  = 80 * time.Millisecond

	CueTransferDuration = 60 * time.Millisecond
)

// Audio cue pitches (Hz)
const (
	CueCorrectLow  = 880.0
	CueCorrectHigh = 1318.5
	CueWrongFreq   = 110.0
	CueTransferHz  = 660.0
)
