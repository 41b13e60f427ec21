package textfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/dsarray"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

var (
	// ErrNotRegular signals that a path does not name a regular file.
	ErrNotRegular = errors.New("textfile: not a regular file")
	// ErrInvalidUTF8 signals that a line of the file is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("textfile: invalid UTF-8")
)

// Config controls loading of a text file. The zero value is a valid
// configuration and selects defaults depending on the size of the file.
type Config struct {
	// FragmentSize is the number of bytes read at once. Values <= 0 or larger
	// than 1 MB are replaced by a default derived from the file size.
	FragmentSize int64
	// Capacity is the number of fragments buffered between reader and line
	// splitter. 0 means 4.
	Capacity uint
}

func (cfg Config) normalized(size int64) Config {
	if cfg.FragmentSize <= 0 || cfg.FragmentSize > oneMb {
		switch {
		case size < 1024:
			cfg.FragmentSize = 256
		case size < tenKb:
			cfg.FragmentSize = 1024
		case size < hundredKb:
			cfg.FragmentSize = twoKb
		case size < oneMb:
			cfg.FragmentSize = sixKb
		default:
			cfg.FragmentSize = 8 * tenKb
		}
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = 4
	}
	return cfg
}

// fragment is a chunk of a file's content, as broadcast by the reader.
type fragment struct {
	pos  int64  // start position of this fragment within the file
	data []byte // content, may end in the middle of a line
	last bool   // no more fragments will follow
	err  error  // I/O error while loading this fragment
}

// textFile represents an OS file which will be loaded as an array of lines.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async fragment loading
}

// Load reads a file, which must be a UTF-8 text file, and returns its lines as
// an array. Line terminators ("\n" or "\r\n") are not part of the lines. A
// final line without terminator is included; an empty file yields an empty
// array.
//
// cfg may be nil, selecting defaults. Loading stops early if ctx is cancelled.
func Load(ctx context.Context, name string, cfg *Config) (*dsarray.Array[string], error) {
	tf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c = c.normalized(tf.info.Size())
	tracer().Debugf("textfile: loading %q (%d bytes) in fragments of %d bytes",
		tf.path, tf.info.Size(), c.FragmentSize)
	return tf.load(ctx, c)
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

func (tf *textFile) load(ctx context.Context, cfg Config) (*dsarray.Array[string], error) {
	if err := ctx.Err(); err != nil {
		tf.cast.Close()
		return nil, err
	}
	// subscribe before the reader starts publishing
	sub, ok := tf.cast.Sub(ctx, cfg.Capacity)
	if !ok {
		tf.cast.Close()
		return nil, fmt.Errorf("textfile: cannot subscribe to fragment loader for %s", tf.path)
	}
	// The broadcaster blocks on a full subscriber channel, so fragments still
	// in flight have to be drained for Close to succeed. Close closes sub,
	// which ends the drain.
	defer func() {
		go func() {
			for range sub {
			}
		}()
		tf.cast.Close()
	}()
	go tf.readFragments(cfg.FragmentSize)
	lines := dsarray.NewBuilder[string]()
	var partial []byte
	for {
		var frag fragment
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case m, ok := <-sub:
			if !ok {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				return nil, fmt.Errorf("textfile: loader for %s stopped unexpectedly", tf.path)
			}
			frag = m.(fragment)
		}
		if frag.err != nil {
			return nil, frag.err
		}
		tracer().Debugf("textfile: fragment @%d with %d bytes", frag.pos, len(frag.data))
		var err error
		if partial, err = splitLines(append(partial, frag.data...), lines); err != nil {
			return nil, fmt.Errorf("%w: %s near position %d", err, tf.path, frag.pos)
		}
		if frag.last {
			break
		}
	}
	if len(partial) > 0 {
		if err := appendLine(partial, lines); err != nil {
			return nil, fmt.Errorf("%w: %s, last line", err, tf.path)
		}
	}
	array := lines.Array()
	tracer().Infof("textfile: loaded %d lines from %s", array.Len(), tf.path)
	return array, nil
}

// readFragments loads the file sequentially and publishes every fragment.
// It runs in its own goroutine and stops as soon as publishing fails, i.e.
// the consumer has closed the broadcaster.
func (tf *textFile) readFragments(fragSize int64) {
	size := tf.info.Size()
	for pos := int64(0); ; pos += fragSize {
		length := min(fragSize, size-pos)
		buf := make([]byte, max(length, 0))
		cnt, err := tf.file.ReadAt(buf, pos)
		frag := fragment{pos: pos, data: buf[:cnt], last: pos+length >= size}
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("textfile: error loading fragment @%d: %w", pos, err)
			frag.last = true
		}
		if !tf.cast.Pub(frag) || frag.last {
			return
		}
	}
}

// splitLines stages every complete line of text and returns the remainder
// after the last line terminator.
func splitLines(text []byte, lines *dsarray.Builder[string]) ([]byte, error) {
	for {
		i := bytes.IndexByte(text, '\n')
		if i < 0 {
			return text, nil
		}
		if err := appendLine(text[:i], lines); err != nil {
			return nil, err
		}
		text = text[i+1:]
	}
}

func appendLine(line []byte, lines *dsarray.Builder[string]) error {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if !utf8.Valid(line) {
		return ErrInvalidUTF8
	}
	return lines.Append(string(line))
}
