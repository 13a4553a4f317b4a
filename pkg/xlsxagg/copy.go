package xlsxagg

import (
	"errors"
	"io"
	"os"
)

var errSameFile = errors.New("source and destination are the same file")

// CopyFile copies the template at src to dst, replacing dst if it exists.
func CopyFile(src, dst string) (err error) {
	defer func() {
		if err != nil {
			err = &CopyError{Src: src, Dst: dst, Err: err}
		}
	}()

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if dstInfo, statErr := os.Stat(dst); statErr == nil && os.SameFile(srcInfo, dstInfo) {
		return errSameFile
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
