package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/google/uuid"
)

var Header = []string{
	"run_id",
	"instance",
	"algorithm",
	"run",
	"solution_index",
	"makespan",
	"dissatisfaction",
	"millis",
}

// Row is one solution of one run. Baseline runs export a single row.
type Row struct {
	RunID     string
	Instance  string
	Algorithm string

	Run           int
	SolutionIndex int

	Makespan        int64
	Dissatisfaction float64
	Millis          int64
}

func NewRunID() string {
	return uuid.NewString()
}

func (r *Row) record() []string {
	return []string{
		r.RunID,
		r.Instance,
		r.Algorithm,
		strconv.Itoa(r.Run),
		strconv.Itoa(r.SolutionIndex),
		strconv.FormatInt(r.Makespan, 10),
		strconv.FormatFloat(r.Dissatisfaction, 'f', 6, 64),
		strconv.FormatInt(r.Millis, 10),
	}
}

// Write emits the rows, preceded by the header when withHeader is set.
func Write(w io.Writer, rows []Row, withHeader bool) error {
	if w == nil {
		return goerrors.ErrNilInput{
			InputName: "writer",
		}
	}

	writer := csv.NewWriter(w)

	if withHeader {
		if errHeader := writer.Write(Header); errHeader != nil {
			return errHeader
		}
	}

	for ix := range rows {
		if errRow := writer.Write(rows[ix].record()); errRow != nil {
			return fmt.Errorf("row %d: %w", ix, errRow)
		}
	}

	writer.Flush()

	return writer.Error()
}

// AppendFile appends the rows to path, writing the header only when the file
// is created or empty.
func AppendFile(path string, rows []Row) error {
	if errDir := os.MkdirAll(filepath.Dir(path), 0o755); errDir != nil {
		return errDir
	}

	var withHeader bool

	info, errStat := os.Stat(path)

	switch {
	case errors.Is(errStat, os.ErrNotExist):
		withHeader = true

	case errStat != nil:
		return errStat

	default:
		withHeader = info.Size() == 0
	}

	f, errOpen := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if errOpen != nil {
		return errOpen
	}

	if errWrite := Write(f, rows, withHeader); errWrite != nil {
		f.Close()

		return fmt.Errorf("write %s: %w", path, errWrite)
	}

	return f.Close()
}
