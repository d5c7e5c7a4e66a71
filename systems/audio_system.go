package systems

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"ebiten-tanks/config"
	"ebiten-tanks/ecs"
)

// SampleRate is the audio context rate the synthesized effects are built for
const SampleRate = 44100

// Sound identifies a synthesized effect
type Sound int

const (
	SoundBounce Sound = iota
	SoundShot
	SoundHit
)

// tone describes a decaying square-ish blip
type tone struct {
	freq     float64 // Hz
	duration float64 // Seconds
	gain     float64
}

var tones = map[Sound]tone{
	SoundBounce: {freq: 880, duration: 0.05, gain: 0.25},
	SoundShot:   {freq: 440, duration: 0.08, gain: 0.3},
	SoundHit:    {freq: 110, duration: 0.35, gain: 0.5},
}

// AudioSystem plays effects in response to world events
type AudioSystem struct {
	initialized  bool
	audioContext *audio.Context
	settings     *config.SettingsManager
	samples      map[Sound][]byte
	played       map[Sound]int
}

// NewAudioSystem creates a new audio system.
// A nil context keeps the system silent but still counts what would have played.
func NewAudioSystem(ctx *audio.Context, settings *config.SettingsManager) *AudioSystem {
	s := &AudioSystem{
		audioContext: ctx,
		settings:     settings,
		samples:      make(map[Sound][]byte, len(tones)),
		played:       make(map[Sound]int),
	}
	for sound, t := range tones {
		s.samples[sound] = synthesize(t, SampleRate)
	}
	return s
}

// Initialize subscribes to the events that make noise
func (s *AudioSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	em := world.GetEventManager()
	em.Subscribe(EventBulletBounce, func(ecs.Event) { s.Play(SoundBounce) })
	em.Subscribe(EventShotFired, func(ecs.Event) { s.Play(SoundShot) })
	em.Subscribe(EventTankHit, func(ecs.Event) { s.Play(SoundHit) })

	s.initialized = true
}

// Update registers with the event system if not already initialized
func (s *AudioSystem) Update(world *ecs.World, dt float64) {
	if !s.initialized {
		s.Initialize(world)
	}
}

// Play starts an effect unless sound is disabled
func (s *AudioSystem) Play(sound Sound) {
	volume := 1.0
	if s.settings != nil {
		if !s.settings.Settings().SoundEnabled {
			return
		}
		volume = s.settings.Settings().SoundVolume
	}

	s.played[sound]++
	if s.audioContext == nil {
		return
	}

	player := s.audioContext.NewPlayerFromBytes(s.samples[sound])
	player.SetVolume(volume)
	player.Play()
}

// PlayCount returns how many times a sound has been triggered
func (s *AudioSystem) PlayCount(sound Sound) int {
	return s.played[sound]
}

// synthesize renders a tone as 16-bit little-endian stereo PCM
func synthesize(t tone, sampleRate int) []byte {
	n := int(t.duration * float64(sampleRate))
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * t.freq * float64(i) / float64(sampleRate)
		// Soft square: a sine with its third harmonic
		v := math.Sin(phase) + math.Sin(3*phase)/3
		envelope := 1 - float64(i)/float64(n)
		sample := int16(v * envelope * t.gain * math.MaxInt16 * 0.75)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(sample))
	}
	return buf
}
