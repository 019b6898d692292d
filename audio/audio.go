// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
)

// SniffLen is how many leading bytes Registry.Open hands to Sniffers.
const SniffLen = 16

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1] and
	// returns how many values it wrote. n == 0 with io.EOF ends the stream.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Sniffer is implemented by decoders that recognize their format from the
// first SniffLen bytes of a stream. head may be shorter for tiny inputs.
type Sniffer interface {
	Sniff(head []byte) bool
}

// Registry maps format names (e.g. "wav", "mp3", "ogg") to decoders.
type Registry struct {
	mtx    sync.Mutex
	names  []string
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

// Register adds d under format, replacing any decoder already there.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.names = append(r.names, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format names in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append([]string(nil), r.names...)
}

// Detect returns the first registered decoder, in registration order, whose
// Sniff accepts head.
func (r *Registry) Detect(head []byte) (string, Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, name := range r.names {
		s, ok := r.codecs[name].(Sniffer)
		if ok && s.Sniff(head) {
			return name, r.codecs[name], true
		}
	}

	return "", nil, false
}

// Open detects the format of rd from its leading bytes and decodes it.
// Seekable readers are rewound after sniffing; others are wrapped in a
// bufio.Reader that replays the sniffed bytes.
func (r *Registry) Open(rd io.Reader) (Source, string, error) {
	head, rd, err := peek(rd, SniffLen)
	if err != nil {
		return nil, "", err
	}

	name, dec, ok := r.Detect(head)
	if !ok {
		return nil, "", ErrUnknownFormat
	}

	src, err := dec.Decode(rd)
	if err != nil {
		return nil, name, fmt.Errorf("decoding %s: %w", name, err)
	}

	return src, name, nil
}

func peek(rd io.Reader, n int) ([]byte, io.Reader, error) {
	if rs, ok := rd.(io.ReadSeeker); ok {
		start, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, nil, fmt.Errorf("%w", err)
		}

		head := make([]byte, n)
		got, err := io.ReadFull(rs, head)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, nil, fmt.Errorf("%w", err)
		}

		if _, err := rs.Seek(start, io.SeekStart); err != nil {
			return nil, nil, fmt.Errorf("%w", err)
		}

		return head[:got], rs, nil
	}

	br := bufio.NewReader(rd)
	head, err := br.Peek(n)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%w", err)
	}

	return head, br, nil
}
