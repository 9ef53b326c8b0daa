// Package store reads and writes the bird JSON document. A load parses the
// whole file into memory; a save rewrites the whole file in place.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/gofrs/flock"

	"github.com/agentstation/birdmap/pkg/birds"
	"github.com/agentstation/birdmap/pkg/constants"
	"github.com/agentstation/birdmap/pkg/errors"
	"github.com/agentstation/birdmap/pkg/save"
)

const lockRetryDelay = 100 * time.Millisecond

// Store is the JSON document at a fixed path.
type Store struct {
	path string
	lock *flock.Flock
}

// Open returns a store for path. No I/O happens until Load or Save.
func Open(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + constants.LockSuffix),
	}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Lock takes the advisory lock next to the document, waiting until ctx is
// done. The returned func releases it. The <path>.lock file stays on disk
// after release; removing it would let two processes lock different inodes.
func (s *Store) Lock(ctx context.Context) (func() error, error) {
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %w", errors.ErrLocked, s.lock.Path(), errors.Join(errors.ErrCanceled, ctx.Err()))
		}
		return nil, errors.WrapIO("lock", s.lock.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrLocked, s.lock.Path())
	}
	return s.lock.Unlock, nil
}

// Load reads the document.
func (s *Store) Load() (birds.Records, error) {
	return Load(s.path)
}

// Save writes records back to the document path unless opts redirect it.
func (s *Store) Save(records birds.Records, opts ...save.Option) error {
	return Save(records, append([]save.Option{save.WithPath(s.path)}, opts...)...)
}

// Load parses the JSON array at path. A missing file yields an IOError
// wrapping fs.ErrNotExist; a malformed document yields a ParseError; a
// record without a usable name yields a ValidationError.
func Load(path string) (birds.Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Decode(path, data)
}

// Decode parses a JSON document. path is only used in error messages.
func Decode(path string, data []byte) (birds.Records, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.NewParseError("json", path, "document must be a JSON array of bird records", nil)
	}

	var records birds.Records
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d in %s: %w", i, path, err)
		}
	}
	if records == nil {
		records = birds.Records{}
	}
	return records, nil
}

// Save serializes records and writes them to the configured path or writer.
// The document is encoded fully before the file is touched; the write itself
// truncates and overwrites in place.
func Save(records birds.Records, opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	var buf bytes.Buffer
	if err := Encode(&buf, records, options.Format(), options.Indent()); err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(buf.Bytes()); err != nil {
			return errors.WrapIO("write", "output", err)
		}
		return nil
	}

	if options.Path() == "" {
		return errors.NewValidationError("path", "", "no save path or writer configured")
	}
	if err := os.WriteFile(options.Path(), buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", options.Path(), err)
	}
	return nil
}

// Encode writes records to w in the given format.
func Encode(w io.Writer, records birds.Records, format save.Format, indent string) error {
	if records == nil {
		records = birds.Records{}
	}

	switch format {
	case save.FormatYAML:
		out, err := yaml.MarshalWithOptions(records, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return errors.WrapParse("yaml", "", err)
		}
		_, err = w.Write(out)
		return err
	case save.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", indent)
		if err := enc.Encode(records); err != nil {
			return errors.WrapParse("json", "", err)
		}
		return nil
	default:
		return errors.NewValidationError("format", format.String(), "unsupported save format")
	}
}
