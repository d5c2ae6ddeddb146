package dict

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// SaveFile writes the bundle to path as JSON, atomically (§4.1, §4.12):
// the file either contains the complete old bundle or the complete new
// one, never a partial write, even if the process is killed mid-save. This
// mirrors how the teacher persists its own binary cache via
// github.com/natefinch/atomic instead of a bare os.WriteFile.
func (b *Bundle) SaveFile(path string, pretty bool) error {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = b.MarshalJSONIndent()
	} else {
		data, err = b.MarshalJSON()
	}
	if err != nil {
		return &LoadError{Path: path, Op: "save", Err: err}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return &LoadError{Path: path, Op: "save", Err: fmt.Errorf("atomic write: %w", err)}
	}

	return nil
}
