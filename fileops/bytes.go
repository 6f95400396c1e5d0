package fileops

import (
	"io"
)

// ReadAllBytes returns the content of the file at path.
func (o *FileOps) ReadAllBytes(path string) ([]byte, error) {
	h, err := o.OpenRead(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = h.Close() }()

	c := o.begin(OpReadAll, "ReadAllBytes").with("path", path)
	data, err := io.ReadAll(h)
	return data, c.done(err)
}

// WriteAllBytes creates or truncates the file at path and writes data to it.
func (o *FileOps) WriteAllBytes(path string, data []byte) error {
	h, err := o.Create(path)
	if err != nil {
		return err
	}

	c := o.begin(OpWriteAll, "WriteAllBytes").with("path", path)
	_, err = h.Write(data)
	if cerr := h.Close(); err == nil {
		err = cerr
	}
	return c.done(err)
}
