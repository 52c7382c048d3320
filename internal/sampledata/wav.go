// Package sampledata generates small audio and photo fixtures so the tool
// can be exercised without real source material.
package sampledata

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

const (
	wavSampleRate = 44100
	wavChannels   = 2
	wavSampleBits = 16
)

type note struct {
	freq     float64
	duration float64
}

// Square-wave beeper rendition of a short looping melody.
var melody = []note{
	{329.63, 0.2}, {293.66, 0.2}, {261.63, 0.2}, {293.66, 0.2}, {329.63, 0.2}, {293.66, 0.2},
	{329.63, 0.2}, {349.23, 0.2}, {392.00, 0.4},
	{329.63, 0.2}, {293.66, 0.2}, {261.63, 0.2}, {293.66, 0.2}, {329.63, 0.2}, {293.66, 0.2},
	{329.63, 0.2}, {349.23, 0.2}, {392.00, 0.4},
	{392.00, 0.2}, {440.00, 0.2}, {493.88, 0.2}, {523.25, 0.2}, {493.88, 0.2}, {440.00, 0.2},
	{392.00, 0.2}, {440.00, 0.2}, {493.88, 0.4},
	{0, 0.2},
}

// WriteMelodyWAV writes a 16-bit stereo WAV containing a looped square-wave
// melody of the requested duration.
func WriteMelodyWAV(path string, duration float64) error {
	return writeWAV(path, duration, melodySample)
}

// WriteToneWAV writes a 16-bit stereo WAV containing a sine tone at freq Hz.
func WriteToneWAV(path string, duration, freq float64) error {
	return writeWAV(path, duration, func(frame int) int16 {
		t := float64(frame) / wavSampleRate
		return int16(0.5 * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
	})
}

func melodySample(frame int) int16 {
	volume := 0.4
	amplitude := int16(volume * math.MaxInt16)
	t := float64(frame) / wavSampleRate

	// Locate the note playing at time t within the looping melody.
	total := 0.0
	for _, n := range melody {
		total += n.duration
	}
	pos := math.Mod(t, total)
	var current note
	for _, n := range melody {
		if pos < n.duration {
			current = n
			break
		}
		pos -= n.duration
	}

	if current.freq == 0 {
		return 0
	}
	phase := math.Mod(t*current.freq, 1.0)
	if phase < 0.5 {
		return amplitude
	}
	return -amplitude
}

func writeWAV(path string, duration float64, sample func(frame int) int16) error {
	if duration <= 0 {
		return fmt.Errorf("sampledata: duration must be positive, got %v", duration)
	}

	frames := int(wavSampleRate * duration)
	blockAlign := wavChannels * wavSampleBits / 8
	dataSize := frames * blockAlign

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sampledata: create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriterSize(file, 64*1024)

	// RIFF/WAVE header.
	w.WriteString("RIFF")
	binary.Write(w, binary.LittleEndian, uint32(36+dataSize))
	w.WriteString("WAVE")
	w.WriteString("fmt ")
	binary.Write(w, binary.LittleEndian, uint32(16))
	binary.Write(w, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(w, binary.LittleEndian, uint16(wavChannels))
	binary.Write(w, binary.LittleEndian, uint32(wavSampleRate))
	binary.Write(w, binary.LittleEndian, uint32(wavSampleRate*blockAlign))
	binary.Write(w, binary.LittleEndian, uint16(blockAlign))
	binary.Write(w, binary.LittleEndian, uint16(wavSampleBits))
	w.WriteString("data")
	binary.Write(w, binary.LittleEndian, uint32(dataSize))

	var buf [4]byte
	for frame := 0; frame < frames; frame++ {
		value := sample(frame)
		binary.LittleEndian.PutUint16(buf[0:2], uint16(value))
		binary.LittleEndian.PutUint16(buf[2:4], uint16(value))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("sampledata: write frames: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("sampledata: flush %s: %w", path, err)
	}
	return nil
}
