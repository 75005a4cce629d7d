package interfaces

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	assembly "arx-bim/internal/assembly/domain"
)

// BuildResultPDF renders a summary PDF for an assembly result.
func BuildResultPDF(result *assembly.Result) ([]byte, error) {
	if result == nil {
		return nil, assembly.ErrNilResult
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "BIM Assembly Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Assembly: %s", result.AssemblyID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Success: %t", result.Success))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Duration (s): %.3f", result.AssemblyTime))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Elements: %d  Systems: %d  Spaces: %d", len(result.Elements), len(result.Systems), len(result.Spaces)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Relationships: %d  Conflicts: %d", len(result.Relationships), len(result.Conflicts)))
	pdf.Ln(8)

	if len(result.Warnings) > 0 {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Warnings")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 9)
		for _, warning := range result.Warnings {
			pdf.Cell(0, 5, warning)
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	// Conflicts table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "Conflict", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Type", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Severity", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Resolved", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, conflict := range result.Conflicts {
		pdf.CellFormat(50, 6, conflict.ID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, string(conflict.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f", conflict.Severity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%t", conflict.Resolved), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildResultXLSX renders an XLSX workbook for an assembly result with one
// sheet per collection.
func BuildResultXLSX(result *assembly.Result) ([]byte, error) {
	if result == nil {
		return nil, assembly.ErrNilResult
	}
	f := excelize.NewFile()
	summarySheet := "summary"
	elementsSheet := "elements"
	spacesSheet := "spaces"
	conflictsSheet := "conflicts"
	f.SetSheetName("Sheet1", summarySheet)
	_, _ = f.NewSheet(elementsSheet)
	_, _ = f.NewSheet(spacesSheet)
	_, _ = f.NewSheet(conflictsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "BIM Assembly Report")
	_ = f.SetCellValue(summarySheet, "A3", "Assembly")
	_ = f.SetCellValue(summarySheet, "B3", result.AssemblyID)
	_ = f.SetCellValue(summarySheet, "A4", "Success")
	_ = f.SetCellValue(summarySheet, "B4", result.Success)
	_ = f.SetCellValue(summarySheet, "A5", "Duration (s)")
	_ = f.SetCellValue(summarySheet, "B5", result.AssemblyTime)
	_ = f.SetCellValue(summarySheet, "A6", "Elements")
	_ = f.SetCellValue(summarySheet, "B6", len(result.Elements))
	_ = f.SetCellValue(summarySheet, "A7", "Systems")
	_ = f.SetCellValue(summarySheet, "B7", len(result.Systems))
	_ = f.SetCellValue(summarySheet, "A8", "Spaces")
	_ = f.SetCellValue(summarySheet, "B8", len(result.Spaces))
	_ = f.SetCellValue(summarySheet, "A9", "Relationships")
	_ = f.SetCellValue(summarySheet, "B9", len(result.Relationships))
	_ = f.SetCellValue(summarySheet, "A10", "Conflicts")
	_ = f.SetCellValue(summarySheet, "B10", len(result.Conflicts))
	if len(result.Warnings) > 0 {
		_ = f.SetCellValue(summarySheet, "A11", "Warnings")
		_ = f.SetCellValue(summarySheet, "B11", strings.Join(result.Warnings, "; "))
	}

	_ = f.SetCellValue(elementsSheet, "A1", "ID")
	_ = f.SetCellValue(elementsSheet, "B1", "Name")
	_ = f.SetCellValue(elementsSheet, "C1", "Type")
	_ = f.SetCellValue(elementsSheet, "D1", "Category")
	for i, element := range result.Elements {
		row := i + 2
		_ = f.SetCellValue(elementsSheet, fmt.Sprintf("A%d", row), element.ID)
		_ = f.SetCellValue(elementsSheet, fmt.Sprintf("B%d", row), element.Name)
		_ = f.SetCellValue(elementsSheet, fmt.Sprintf("C%d", row), string(element.Kind))
		_ = f.SetCellValue(elementsSheet, fmt.Sprintf("D%d", row), string(element.Category))
	}

	_ = f.SetCellValue(spacesSheet, "A1", "ID")
	_ = f.SetCellValue(spacesSheet, "B1", "Type")
	_ = f.SetCellValue(spacesSheet, "C1", "Elements")
	for i, space := range result.Spaces {
		row := i + 2
		_ = f.SetCellValue(spacesSheet, fmt.Sprintf("A%d", row), space.ID)
		_ = f.SetCellValue(spacesSheet, fmt.Sprintf("B%d", row), string(space.Type))
		_ = f.SetCellValue(spacesSheet, fmt.Sprintf("C%d", row), len(space.ElementIDs))
	}

	_ = f.SetCellValue(conflictsSheet, "A1", "ID")
	_ = f.SetCellValue(conflictsSheet, "B1", "Type")
	_ = f.SetCellValue(conflictsSheet, "C1", "Severity")
	_ = f.SetCellValue(conflictsSheet, "D1", "Resolved")
	_ = f.SetCellValue(conflictsSheet, "E1", "Description")
	for i, conflict := range result.Conflicts {
		row := i + 2
		_ = f.SetCellValue(conflictsSheet, fmt.Sprintf("A%d", row), conflict.ID)
		_ = f.SetCellValue(conflictsSheet, fmt.Sprintf("B%d", row), string(conflict.Type))
		_ = f.SetCellValue(conflictsSheet, fmt.Sprintf("C%d", row), conflict.Severity)
		_ = f.SetCellValue(conflictsSheet, fmt.Sprintf("D%d", row), conflict.Resolved)
		_ = f.SetCellValue(conflictsSheet, fmt.Sprintf("E%d", row), conflict.Description)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
