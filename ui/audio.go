package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/user-none/empico/emu"
)

// ringBufferCapacity is ~170ms of 48kHz stereo 16-bit audio.
const ringBufferCapacity = 32768

// playerBufferSize is the amount oto pulls ahead, 100ms.
const playerBufferSize = emu.SampleRate * 4 / 10

// AudioPlayer plays the emulator's int16 stereo samples through oto. The
// emulation goroutine queues samples into a ring buffer that oto's player
// pulls from.
type AudioPlayer struct {
	player     *oto.Player
	ringBuffer *AudioRingBuffer
	audioBytes []byte
}

// oto allows a single context per process.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   emu.SampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-ready
	})
	return otoCtx, otoInitErr
}

// NewAudioPlayer creates and starts audio playback.
func NewAudioPlayer(volume float64) (*AudioPlayer, error) {
	ctx, err := ensureOtoContext()
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	rb := NewAudioRingBuffer(ringBufferCapacity)
	player := ctx.NewPlayer(rb)
	player.SetBufferSize(playerBufferSize)
	player.SetVolume(volume)
	player.Play()

	return &AudioPlayer{
		player:     player,
		ringBuffer: rb,
		audioBytes: make([]byte, 0, 4096),
	}, nil
}

// QueueSamples queues one frame of interleaved stereo samples.
func (a *AudioPlayer) QueueSamples(samples []int16) {
	if len(samples) == 0 {
		return
	}
	a.audioBytes = appendSamples(a.audioBytes[:0], samples)
	a.ringBuffer.Write(a.audioBytes)
}

// appendSamples appends samples to dst as little-endian bytes.
func appendSamples(dst []byte, samples []int16) []byte {
	for _, s := range samples {
		dst = append(dst, byte(s), byte(s>>8))
	}
	return dst
}

// GetBufferLevel returns the bytes of audio queued but not yet played,
// across the ring buffer and oto's own buffer.
func (a *AudioPlayer) GetBufferLevel() int {
	return a.ringBuffer.Buffered() + a.player.BufferedSize()
}

// SetVolume sets the playback volume (0.0 = silent, 1.0 = full).
func (a *AudioPlayer) SetVolume(vol float64) {
	a.player.SetVolume(vol)
}

// Flush drops queued audio, used after a pause so playback does not lag.
func (a *AudioPlayer) Flush() {
	a.ringBuffer.Clear()
}

// Close stops playback.
func (a *AudioPlayer) Close() {
	if a.ringBuffer != nil {
		a.ringBuffer.Close()
	}
	if a.player != nil {
		a.player.Close()
	}
}
