// This file is part of chipset.
//
// chipset is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// chipset is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with chipset.  If not, see <https://www.gnu.org/licenses/>.

// Package audio gives the beam video chip's optional audio-sink callback
// (spec §4.10, §9) a concrete, host-installable implementation: a WAV file
// writer built on go-audio.
package audio

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WavSink buffers signed 16-bit samples from a chip's audio callback and
// flushes them to a mono WAV file on Close.
type WavSink struct {
	file    *os.File
	encoder *wav.Encoder
	buf     *audio.IntBuffer
}

// NewWavSink creates path and prepares a mono WAV encoder at sampleRate.
func NewWavSink(path string, sampleRate int) (*WavSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)

	return &WavSink{
		file:    f,
		encoder: enc,
		buf: &audio.IntBuffer{
			Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
			Data:   make([]int, 0, sampleRate),
		},
	}, nil
}

// Sample installs as a chip's audio-sink callback: it appends one sample,
// flushing to the encoder once a second's worth has accumulated so memory
// use stays bounded during a long run.
func (s *WavSink) Sample(sample int16) {
	s.buf.Data = append(s.buf.Data, int(sample))
	if len(s.buf.Data) >= s.buf.Format.SampleRate {
		s.flush()
	}
}

func (s *WavSink) flush() {
	if len(s.buf.Data) == 0 {
		return
	}
	_ = s.encoder.Write(s.buf)
	s.buf.Data = s.buf.Data[:0]
}

// Close flushes any buffered samples, finalizes the WAV header, and closes
// the underlying file.
func (s *WavSink) Close() error {
	s.flush()
	if err := s.encoder.Close(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
