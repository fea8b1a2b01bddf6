// Package export writes recruitment records to Excel workbooks.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/talentdesk/internal/types"
)

// Sheet names.
const (
	SheetImportedCVs = "Imported CVs"
	SheetCandidates  = "Candidates"
	SheetInterviews  = "Interviews"
)

const dateLayout = "2006-01-02 15:04"

// Data is everything that goes into a workbook. Empty sections still get a
// sheet with headers.
type Data struct {
	ImportedCVs []types.ImportedCV
	Candidates  []types.Candidate
	Interviews  []types.Interview
}

// Write renders the workbook to w.
func Write(w io.Writer, data Data) error {
	f, err := build(data)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveAs writes the workbook to path, adding the .xlsx extension if missing.
func SaveAs(path string, data Data) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f, err := build(data)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func build(data Data) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetImportedCVs); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetCandidates, SheetInterviews} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
		widths  []float64
	}{
		{SheetImportedCVs, cvHeaders, cvRows(data.ImportedCVs), []float64{24, 28, 16, 40, 8, 40, 12, 12, 30}},
		{SheetCandidates, candidateHeaders, candidateRows(data.Candidates), []float64{24, 28, 16, 16, 14, 8, 18, 18}},
		{SheetInterviews, interviewHeaders, interviewRows(data.Interviews), []float64{24, 14, 12, 18, 10, 16, 16, 8, 40}},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.headers, s.rows, s.widths, styles); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to fill sheet %s: %w", s.name, err)
		}
	}
	return f, nil
}

type sheetStyles struct {
	header int
	status map[string]int
}

func newStyles(f *excelize.File) (*sheetStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	fills := map[string]string{
		string(types.ImportedCVApproved): "C6EFCE",
		string(types.ImportedCVPending):  "FFEB9C",
		string(types.ImportedCVRejected): "FFC7CE",
	}
	status := map[string]int{}
	for name, color := range fills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create status style: %w", err)
		}
		status[name] = id
	}
	return &sheetStyles{header: header, status: status}, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any, widths []float64, styles *sheetStyles) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return err
		}
	}
	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}

	statusCol := indexOf(headers, "Status")
	for i, row := range rows {
		rowNum := i + 2
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
			if col == statusCol {
				if style, ok := styles.status[fmt.Sprint(value)]; ok {
					if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func indexOf(values []string, want string) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return -1
}

var cvHeaders = []string{"Name", "Email", "Phone", "Skills", "Years", "Education", "Status", "Scanned", "File"}

func cvRows(cvs []types.ImportedCV) [][]any {
	rows := make([][]any, 0, len(cvs))
	for _, cv := range cvs {
		rows = append(rows, []any{
			cv.FullName,
			cv.Email,
			cv.Phone,
			strings.Join(cv.Skills, ", "),
			cv.YearsOfExperience,
			strings.Join(cv.Education, "; "),
			string(cv.Status),
			yesNo(cv.IsScanned),
			cv.FileName,
		})
	}
	return rows
}

var candidateHeaders = []string{"Name", "Email", "Phone", "Status", "Source", "Rating", "Applied", "Updated"}

func candidateRows(candidates []types.Candidate) [][]any {
	rows := make([][]any, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []any{
			c.FullName(),
			c.Email,
			c.Phone,
			string(c.Status),
			string(c.Source),
			c.Rating,
			c.AppliedDate.Format(dateLayout),
			c.LastUpdated.Format(dateLayout),
		})
	}
	return rows
}

var interviewHeaders = []string{"Candidate", "Type", "Status", "Scheduled", "Minutes", "Interviewer", "Location", "Rating", "Feedback"}

func interviewRows(interviews []types.Interview) [][]any {
	rows := make([][]any, 0, len(interviews))
	for _, i := range interviews {
		name := i.CandidateName
		if name == "" {
			name = i.CandidateID
		}
		rows = append(rows, []any{
			name,
			string(i.InterviewType),
			string(i.Status),
			i.ScheduledDate.Format(dateLayout),
			i.DurationMinutes,
			i.InterviewerID,
			i.Location,
			i.Rating,
			i.Feedback,
		})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
