// Package lpfile stores listpacks on disk. A listpack file is the
// serialized pack wrapped in a small header:
//
//	"LPCK" <version-len u8> <version> <sha256 of payload> <payload>
//
// The version is a semantic version string; readers accept any version
// inside the supported range. The checksum covers only the payload, and
// a loaded payload must additionally pass structural validation before
// it is handed back.
package lpfile

import (
	"bytes"
	"crypto/sha256"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"github.com/run-mojo/listpack"
	"github.com/run-mojo/listpack/lperror"
	"github.com/spf13/afero"
)

const (
	// FormatVersion is written into every file this build produces.
	FormatVersion = "1.0.0"

	magic          = "LPCK"
	checksumSize   = sha256.Size
	supportedRange = ">=1.0.0 <2.0.0"
)

var supportedVersions = semver.MustParseRange(supportedRange)

// Store reads and writes listpack files on a filesystem. The zero-value
// filesystem is the operating system's; tests substitute a memory-backed
// one.
type Store struct {
	fs afero.Fs
}

func NewStore() *Store {
	return &Store{fs: afero.NewOsFs()}
}

func NewStoreWithFs(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save writes the listpack to path. The file is assembled in a sibling
// temporary file and renamed into place, so a crash mid-write never
// leaves a half-written file under the final name.
func (s *Store) Save(path string, lp *listpack.Listpack) error {
	payload := lp.Bytes()

	header := make([]byte, 0, len(magic)+1+len(FormatVersion)+checksumSize)
	header = append(header, magic...)
	header = append(header, byte(len(FormatVersion)))
	header = append(header, FormatVersion...)
	sum := sha256.Sum256(payload)
	header = append(header, sum[:]...)

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, append(header, payload...), 0644); err != nil {
		return lperror.New(lperror.FileSystemIssue,
			errors.Wrapf(err, "writing temporary file for %s", path))
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return lperror.New(lperror.FileSystemIssue,
			errors.Wrapf(err, "moving %s into place", tmp))
	}
	return nil
}

// Load reads the listpack stored at path, verifying the header, the
// format version, the payload checksum, and finally the pack structure.
func (s *Store) Load(path string) (*listpack.Listpack, error) {
	return s.LoadWithAllocator(path, listpack.HeapAllocator{})
}

func (s *Store) LoadWithAllocator(path string, a listpack.Allocator) (*listpack.Listpack, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, lperror.New(lperror.FailedToReadFile, path, err)
	}

	if len(data) < len(magic)+1 || !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return nil, lperror.New(lperror.NotAListpackFile, path)
	}
	data = data[len(magic):]

	verLen := int(data[0])
	if len(data) < 1+verLen+checksumSize {
		return nil, lperror.New(lperror.TruncatedFile, path)
	}
	version := string(data[1 : 1+verLen])
	data = data[1+verLen:]

	parsed, err := semver.Parse(version)
	if err != nil || !supportedVersions(parsed) {
		return nil, lperror.New(lperror.UnsupportedFormatVersion, version, supportedRange)
	}

	sum := data[:checksumSize]
	payload := data[checksumSize:]
	actual := sha256.Sum256(payload)
	if !bytes.Equal(sum, actual[:]) {
		return nil, lperror.New(lperror.ChecksumMismatch, path)
	}

	return listpack.FromBytesWithAllocator(payload, a)
}
