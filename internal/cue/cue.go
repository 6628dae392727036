// Package cue plays short synthesized chimes when the interview moves on.
package cue

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

const (
	noteLength = 120 * time.Millisecond
	gapLength  = 40 * time.Millisecond
	bufferSize = 10
)

// Kind names a chime.
type Kind int

const (
	Start Kind = iota
	Question
	End
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Question:
		return "question"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Notes returns the frequencies (Hz) played for k.
func (k Kind) Notes() []float64 {
	switch k {
	case Start:
		return []float64{523.25, 659.25, 783.99}
	case Question:
		return []float64{659.25, 880}
	case End:
		return []float64{783.99, 659.25, 523.25}
	default:
		return nil
	}
}

// Stream renders the notes as a sequence of quiet sine tones.
func Stream(sr beep.SampleRate, notes []float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes)*2)

	for i, freq := range notes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, err
		}

		parts = append(parts, beep.Take(sr.N(noteLength), tone))

		if i < len(notes)-1 {
			parts = append(parts, beep.Silence(sr.N(gapLength)))
		}
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   -3,
	}, nil
}

// Player plays cues through the default audio device. The zero value is
// ready to use.
type Player struct {
	initErr  error
	play     func(...beep.Streamer)
	initOnce sync.Once
	opened   bool
	Disabled bool
}

func (p *Player) init() error {
	p.initOnce.Do(func() {
		if p.play != nil {
			return
		}

		p.initErr = speaker.Init(SampleRate, SampleRate.N(time.Second/bufferSize))
		p.opened = p.initErr == nil
		p.play = speaker.Play
	})

	return p.initErr
}

// Play starts the chime for k without waiting for it to finish. done, if
// not nil, is called once the chime has played.
func (p *Player) Play(k Kind, done func()) error {
	if p.Disabled {
		return nil
	}

	if err := p.init(); err != nil {
		return errSpeaker.Wrap(err)
	}

	s, err := Stream(SampleRate, k.Notes())
	if err != nil {
		return err
	}

	if done != nil {
		s = beep.Seq(s, beep.Callback(done))
	}

	p.play(s)

	return nil
}

// Close releases the audio device.
func (p *Player) Close() {
	if !p.opened {
		return
	}

	speaker.Clear()
	speaker.Close()
}
