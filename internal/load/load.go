package load

import (
	"fmt"
	"io"
	"os"
)

// Op names the step that failed.
type Op string

const (
	OpOpen Op = "open"
	OpRead Op = "read"
)

// FileAccessError reports a file that could not be opened or read.
type FileAccessError struct {
	Path string
	Op   Op
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ReadFile returns the full contents of path.
// The file handle is closed before ReadFile returns, including on read errors.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: OpOpen, Err: unwrapPathError(err)}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: OpRead, Err: unwrapPathError(err)}
	}

	return data, nil
}

// Pair is an actual/expected input pair.
type Pair struct {
	ActualPath   string
	ExpectedPath string
	Actual       []byte
	Expected     []byte
}

// ReadPair loads the actual file and then the expected file.
// It stops at the first failure.
func ReadPair(actualPath, expectedPath string) (*Pair, error) {
	actual, err := ReadFile(actualPath)
	if err != nil {
		return nil, err
	}

	expected, err := ReadFile(expectedPath)
	if err != nil {
		return nil, err
	}

	return &Pair{
		ActualPath:   actualPath,
		ExpectedPath: expectedPath,
		Actual:       actual,
		Expected:     expected,
	}, nil
}

// unwrapPathError drops the *os.PathError layer since FileAccessError
// already carries the path.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}

	return err
}
