package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/hay-kot/clipstash/internal/store/jsonfile"
)

// DataFileCheck verifies that the data file parses and looks for temp files
// left behind by an interrupted save.
type DataFileCheck struct {
	file *jsonfile.File
	fix  bool
}

// NewDataFileCheck creates a data file check. If fix is true, a leftover temp
// file is removed.
func NewDataFileCheck(file *jsonfile.File, fix bool) *DataFileCheck {
	return &DataFileCheck{file: file, fix: fix}
}

func (c *DataFileCheck) Name() string {
	return "Data File"
}

func (c *DataFileCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	exists, err := c.file.Exists()
	switch {
	case err != nil:
		result.Items = append(result.Items, CheckItem{
			Label:  c.file.Path(),
			Status: StatusFail,
			Detail: err.Error(),
		})
	case !exists:
		result.Items = append(result.Items, CheckItem{
			Label:  c.file.Path(),
			Status: StatusPass,
			Detail: "not created yet",
		})
	default:
		result.Items = append(result.Items, c.parse())
	}

	if item, ok := c.leftoverTemp(); ok {
		result.Items = append(result.Items, item)
	}

	return result
}

func (c *DataFileCheck) parse() CheckItem {
	s, err := c.file.Load()
	if err != nil {
		return CheckItem{
			Label:  c.file.Path(),
			Status: StatusFail,
			Detail: err.Error(),
		}
	}

	return CheckItem{
		Label:  c.file.Path(),
		Status: StatusPass,
		Detail: fmt.Sprintf("%d histories, %d entries", len(s.HistoryNames()), s.Len()),
	}
}

func (c *DataFileCheck) leftoverTemp() (CheckItem, bool) {
	tmp := c.file.Path() + ".tmp"
	if _, err := os.Stat(tmp); err != nil {
		return CheckItem{}, false
	}

	if c.fix {
		if err := os.Remove(tmp); err != nil {
			return CheckItem{
				Label:  "Leftover temp file",
				Status: StatusFail,
				Detail: fmt.Sprintf("remove %s: %v", tmp, err),
			}, true
		}
		return CheckItem{
			Label:  "Leftover temp file",
			Status: StatusPass,
			Detail: "removed " + tmp,
		}, true
	}

	return CheckItem{
		Label:   "Leftover temp file",
		Status:  StatusWarn,
		Detail:  tmp + " is left from an interrupted save",
		Fixable: true,
	}, true
}
