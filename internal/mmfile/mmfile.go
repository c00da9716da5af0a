// Package mmfile maps input files read-only into memory.
package mmfile

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

type File struct {
	data mmap.MMap
	file *os.File
}

// Open maps the whole file at filepath. Empty files are opened but not
// mapped, and report a nil Bytes.
func Open(filepath string) (f *File, err error) {
	f = new(File)

	if f.file, err = os.Open(filepath); err != nil {
		return nil, err
	}

	info, err := f.file.Stat()

	if err != nil {
		f.file.Close()
		return nil, err
	}

	if info.Size() == 0 {
		return
	}

	if f.data, err = mmap.Map(f.file, mmap.RDONLY, 0); err != nil {
		f.file.Close()
		return nil, err
	}

	return
}

// Bytes returns the mapped contents. The slice is only valid until Close.
func (f *File) Bytes() []byte {
	return f.data
}

func (f *File) Len() int {
	return len(f.data)
}

func (f *File) Close() (err error) {
	if f.data != nil {
		if err = f.data.Unmap(); err != nil {
			return
		}

		f.data = nil
	}

	return f.file.Close()
}
