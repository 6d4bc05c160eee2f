package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/touchplay/parameter"
)

// Output receives finite streamers to play
type Output interface {
	Play(s beep.Streamer)
	Close()
}

// SpeakerOutput mixes cues onto the system speaker
type SpeakerOutput struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerOutput opens the speaker at the cue sample rate
func NewSpeakerOutput() (*SpeakerOutput, error) {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	o := &SpeakerOutput{mixer: &beep.Mixer{}, initialized: true}
	speaker.Play(o.mixer)
	return o, nil
}

// Play adds s to the mixer; it is dropped once drained
func (o *SpeakerOutput) Play(s beep.Streamer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything and closes the speaker
func (o *SpeakerOutput) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.initialized {
		return
	}
	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	o.initialized = false
}
