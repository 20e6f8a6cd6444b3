// Package wavio reads WAV impulse responses as normalized float32 samples.
package wavio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// WAV format tags recognized by the reader.
const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// ReadSamples decodes a WAV file into float32 samples normalized to [-1, 1].
// If limit > 0 only the first limit frames are kept; limit == 0 keeps all.
// Interleaved data is taken verbatim (mono input assumed), so frames equal
// samples. The second return value is the declared sample rate.
//
// Recognized storage formats: 16-bit PCM (scaled by 1/32767), 32-bit PCM
// (scaled by 1/2147483647), and 32/64-bit IEEE float (passed through, float64
// narrowed to float32). Anything else fails with ErrUnsupportedFormat.
func ReadSamples(path string, limit int) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNotWAV)
	}
	rate := int(dec.SampleRate)

	switch dec.WavAudioFormat {
	case formatPCM:
		var scale float64
		switch dec.BitDepth {
		case 16:
			scale = 32767.0
		case 32:
			scale = 2147483647.0
		default:
			return nil, 0, fmt.Errorf("%s: %d-bit PCM: %w", path, dec.BitDepth, ErrUnsupportedFormat)
		}
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", path, err)
		}
		data := buf.Data
		if limit > 0 && len(data) > limit {
			data = data[:limit]
		}
		out := make([]float32, len(data))
		for i, v := range data {
			out[i] = float32(float64(v) / scale)
		}
		return out, rate, nil

	case formatIEEEFloat:
		bits := int(dec.BitDepth)
		if bits != 32 && bits != 64 {
			return nil, 0, fmt.Errorf("%s: %d-bit float: %w", path, bits, ErrUnsupportedFormat)
		}
		out, err := readFloatFrames(f, bits, limit)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", path, err)
		}
		return out, rate, nil

	default:
		return nil, 0, fmt.Errorf("%s: format tag %d: %w", path, dec.WavAudioFormat, ErrUnsupportedFormat)
	}
}

// readFloatFrames decodes the data chunk of an IEEE-float WAV directly.
// go-audio's IntBuffer cannot carry float samples losslessly, so this path
// rewinds the file and walks the RIFF chunks itself.
func readFloatFrames(r io.ReadSeeker, bits int, limit int) ([]float32, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var riffHdr [12]byte
	if _, err := io.ReadFull(r, riffHdr[:]); err != nil {
		return nil, err
	}

	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrNoData
			}
			return nil, err
		}
		size := binary.LittleEndian.Uint32(hdr[4:8])
		if string(hdr[:4]) == "data" {
			return decodeFloatData(r, int(size), bits, limit)
		}
		// Chunks are word-aligned; odd sizes carry a pad byte.
		skip := int64(size)
		if size%2 == 1 {
			skip++
		}
		if _, err := r.Seek(skip, io.SeekCurrent); err != nil {
			return nil, err
		}
	}
}

func decodeFloatData(r io.Reader, size int, bits int, limit int) ([]float32, error) {
	bytesPerFrame := bits / 8
	frames := size / bytesPerFrame
	if limit > 0 && frames > limit {
		frames = limit
	}
	raw := make([]byte, frames*bytesPerFrame)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	out := make([]float32, frames)
	for i := 0; i < frames; i++ {
		p := raw[i*bytesPerFrame:]
		if bits == 32 {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p))
		} else {
			out[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(p)))
		}
	}
	return out, nil
}
