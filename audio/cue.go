package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/touchplay/parameter"
)

// Cue is a short sound tied to a session notification
type Cue int

const (
	CueCorrect Cue = iota
	CueWrong
	CueTransfer
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Streamer builds a fresh finite streamer for the cue
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueCorrect:
		// rising fifth
		half := parameter.CueCorrectDuration / 2
		return newVolume(beep.Seq(
			newEnvelope(newTone(parameter.CueCorrectLow, half, WaveSine, rate),
				half, parameter.CueCorrectAttack, parameter.CueCorrectRelease/2, rate),
			newEnvelope(newTone(parameter.CueCorrectHigh, half, WaveSine, rate),
				half, parameter.CueCorrectAttack, parameter.CueCorrectRelease, rate),
		), 0.4)
	case CueWrong:
		return newVolume(newEnvelope(
			newTone(parameter.CueWrongFreq, parameter.CueWrongDuration, WaveSquare, rate),
			parameter.CueWrongDuration, parameter.CueWrongAttack, parameter.CueWrongRelease, rate,
		), 0.25)
	default:
		return newVolume(newEnvelope(
			newTone(parameter.CueTransferHz, parameter.CueTransferDuration, WaveSine, rate),
			parameter.CueTransferDuration, parameter.CueCorrectAttack, parameter.CueTransferDuration/2, rate,
		), 0.2)
	}
}
