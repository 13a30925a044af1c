// Package export writes parse results to spreadsheet workbooks.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetContact    = "Contact"
	SheetEducation  = "Education"
	SheetExperience = "Experience"
	SheetSkills     = "Skills"
)

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

// WriteWorkbook writes profile and/or skills results to an .xlsx file and
// returns the path written. The .xlsx extension is added when missing.
func WriteWorkbook(path string, profile *types.ProfileReport, skills *types.SkillsReport) (string, error) {
	if profile == nil && skills == nil {
		return "", errors.New("nothing to export: no profile or skills report")
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	var sheets []sheet
	if profile != nil {
		sheets = append(sheets, contactSheet(profile), educationSheet(profile), experienceSheet(profile))
	}
	if skills != nil {
		sheets = append(sheets, skillsSheet(skills))
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return "", fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return "", fmt.Errorf("failed to write sheet %s: %w", s.name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	headers := make([]any, len(s.headers))
	for i, h := range s.headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return err
		}
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func contactSheet(p *types.ProfileReport) sheet {
	c := p.Contact
	return sheet{
		name:    SheetContact,
		headers: []string{"Field", "Value"},
		widths:  []float64{22, 60},
		rows: [][]any{
			{"Source", p.Source},
			{"Name", c.Name},
			{"Email", c.Email},
			{"Phone", c.Phone},
			{"LinkedIn", c.LinkedIn},
			{"GitHub", c.GitHub},
			{"Links", strings.Join(c.AdditionalURLs, "\n")},
			{"Work authorization", c.WorkAuthorization},
			{"Summary", p.Summary},
			{"Certifications", strings.Join(p.Certifications.Items, "\n")},
		},
	}
}

func educationSheet(p *types.ProfileReport) sheet {
	s := sheet{
		name:    SheetEducation,
		headers: []string{"Institution", "Location", "Graduation", "Degree", "Emphasis", "GPA", "Minors", "Details"},
		widths:  []float64{32, 18, 14, 28, 24, 10, 24, 50},
	}
	for _, e := range p.Education.Items {
		s.rows = append(s.rows, []any{e.Institution, e.Location, e.GraduationDate, e.Degree, e.Emphasis, e.GPA, e.Minors, e.Details})
	}
	return s
}

func experienceSheet(p *types.ProfileReport) sheet {
	s := sheet{
		name:    SheetExperience,
		headers: []string{"Job Title", "Company", "Location", "Start", "End", "Details", "Bullets"},
		widths:  []float64{28, 28, 18, 12, 12, 40, 80},
	}
	for _, e := range p.Experience.Items {
		s.rows = append(s.rows, []any{e.JobTitle, e.Company, e.Location, e.StartDate, e.EndDate, e.Details, strings.Join(e.Bullets, "\n")})
	}
	return s
}

func skillsSheet(r *types.SkillsReport) sheet {
	s := sheet{
		name:    SheetSkills,
		headers: []string{"Category", "Found", "Missing", "Found Count", "Total"},
		widths:  []float64{24, 50, 50, 12, 10},
	}
	for _, c := range r.Categories {
		s.rows = append(s.rows, []any{c.Category, strings.Join(c.Found, ", "), strings.Join(c.Missing, ", "), len(c.Found), c.Total()})
	}
	if r.Score != nil {
		s.rows = append(s.rows, []any{}, []any{"Score", fmt.Sprintf("%.2f%%", *r.Score)})
	}
	return s
}
