package tui

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	beepSampleRate = beep.SampleRate(44100)
	beepFrequency  = 880
	beepDuration   = 50 * time.Millisecond
)

type beeper struct{}

func newBeeper() (*beeper, error) {
	if err := speaker.Init(beepSampleRate, beepSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &beeper{}, nil
}

func (b *beeper) play() {
	sine, err := generators.SineTone(beepSampleRate, beepFrequency)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(beepSampleRate.N(beepDuration), sine))
}
