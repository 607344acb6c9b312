package emu

// The console has no sound hardware. Each frame still yields one
// frame's worth of silent stereo samples so frontends that pace
// emulation on the audio queue keep running at the frame rate.

const audioFrameSamples = frameSample * 2 // interleaved L/R

// generateAudio resets the audio buffer to one frame of silence.
func (e *Emulator) generateAudio() {
	e.audioBuffer = e.audioBuffer[:audioFrameSamples]
	clear(e.audioBuffer)
}

// GetAudioSamples returns the frame's audio as 16-bit stereo PCM.
func (e *Emulator) GetAudioSamples() []int16 {
	return e.audioBuffer
}
