package lexicon

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// scanMapped memory-maps path read-only and calls fn for every line.
// The line slice aliases the mapping and must not be retained.
func scanMapped(path string, fn func(line []byte)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	// zero-length files cannot be mapped
	if info.Size() == 0 {
		return nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	s := bufio.NewScanner(bytes.NewReader(m))
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		fn(s.Bytes())
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", path, err)
	}
	return nil
}
