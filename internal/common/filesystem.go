package common

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/xerrors"
)

func MkdirForFile(fileName string) error {
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return xerrors.Errorf("failed to create dir for %s: %w", fileName, err)
	}
	return nil
}

func OpenTempFile(fullPath string) (f *os.File, err error) {
	fileNameTmp := fullPath + "." + strconv.Itoa(rand.Int())
	return os.OpenFile(fileNameTmp, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
}

// WriteFileAtomically writes contents to a temp file near fullPath and renames it,
// so that a reader (a completion engine watching compile_commands.json) never sees a partial file.
func WriteFileAtomically(fullPath string, contents []byte) error {
	if err := MkdirForFile(fullPath); err != nil {
		return err
	}
	f, err := OpenTempFile(fullPath)
	if err != nil {
		return xerrors.Errorf("failed to create temp file for %s: %w", fullPath, err)
	}
	if _, err = f.Write(contents); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return xerrors.Errorf("failed to write %s: %w", f.Name(), err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	if err = os.Rename(f.Name(), fullPath); err != nil {
		_ = os.Remove(f.Name())
		return xerrors.Errorf("failed to rename %s: %w", f.Name(), err)
	}
	return nil
}

// PathAbs makes relPath absolute relative to cwd, leaving absolute paths as is.
func PathAbs(cwd string, relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}
	return filepath.Join(cwd, relPath)
}
