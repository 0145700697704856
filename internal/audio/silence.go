// Package audio produces the narration files for a tour: silent
// placeholder MP3s of the declared durations, text markers for slots
// that still need a recording, and synthesized speech through a
// tts.Synthesizer.
package audio

import "bytes"

// Silent placeholders are MPEG-1 Layer III at 128 kbps, 44.1 kHz, mono.
// A frame whose main data is all zeros decodes as digital silence, so
// the file needs no encoder, just correctly sized frames.
const (
	mp3SampleRate      = 44100
	mp3SamplesPerFrame = 1152
	mp3BitRate         = 128000

	// mp3FrameSize is the unpadded frame length; padded frames carry one
	// extra byte so the stream averages exactly the nominal bit rate.
	mp3FrameSize = 144 * mp3BitRate / mp3SampleRate
)

// mp3FrameHeader encodes the format above: frame sync, MPEG-1 Layer III
// without CRC, bitrate index 9, sample rate index 0, single channel.
// Padded frames additionally set bit 1 of the third byte.
var mp3FrameHeader = [4]byte{0xff, 0xfb, 0x90, 0xc4}

// SilentMP3 encodes the given number of seconds of silence. The frame
// count is rounded up, so the result is never shorter than asked.
func SilentMP3(seconds int) []byte {
	frames := (seconds*mp3SampleRate + mp3SamplesPerFrame - 1) / mp3SamplesPerFrame

	var buf bytes.Buffer
	buf.Grow(frames * (mp3FrameSize + 1))

	zeros := make([]byte, mp3FrameSize+1-len(mp3FrameHeader))
	carry := 0
	for i := 0; i < frames; i++ {
		header := mp3FrameHeader
		size := mp3FrameSize

		carry += 144 * mp3BitRate % mp3SampleRate
		if carry >= mp3SampleRate {
			carry -= mp3SampleRate
			header[2] |= 0x02
			size++
		}

		buf.Write(header[:])
		buf.Write(zeros[:size-len(mp3FrameHeader)])
	}
	return buf.Bytes()
}
