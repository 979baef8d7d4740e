package commandlist

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"sort_attack_list/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Store loads and saves attack list documents on a filesystem. The path "-"
// (and an empty input path) selects stdin or stdout.
type Store struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
}

func NewStore(fs afero.Fs, stdin io.Reader, stdout io.Writer) *Store {
	return &Store{
		fs:     fs,
		stdin:  stdin,
		stdout: stdout,
	}
}

// Load reads the document at path
func (s *Store) Load(path string) (*Document, error) {
	if path == "" || path == config.StdioPath {
		log.Debug().Msg("Reading attack list from stdin")
		return Read(s.stdin)
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open attack list: %w", err)
	}
	defer f.Close()

	log.Debug().Str("path", path).Msg("Reading attack list")
	return Read(f)
}

// Save writes doc to path. The document is encoded in full and written to
// a temporary file beside path, which then replaces path, so a failed run
// never leaves a partial file behind.
func (s *Store) Save(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return err
	}

	if path == config.StdioPath {
		if _, err := s.stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write attack list to stdout: %w", err)
		}
		return nil
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary output file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		s.discard(tmpName)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		s.discard(tmpName)
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := s.fs.Chmod(tmpName, 0644); err != nil {
		s.discard(tmpName)
		return fmt.Errorf("failed to set output file permissions: %w", err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		s.discard(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("bytes", buf.Len()).
		Msg("Wrote attack list")
	return nil
}

func (s *Store) discard(name string) {
	if err := s.fs.Remove(name); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", name).Msg("Failed to remove temporary output file")
	}
}
