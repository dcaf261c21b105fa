// Package export renders stored records as spreadsheets for procurement
// officers.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/xuri/excelize/v2"
)

const (
	SheetProject     = "Project"
	SheetTeam        = "Team"
	SheetConsumables = "Consumables"
	SheetInitiations = "Initiations"
)

// amountFormat is the built-in "#,##0.00" number format.
const amountFormat = 4

// amount is a decimal written into a numeric cell from its exact text.
type amount string

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]any
}

// ProjectWorkbook builds a workbook describing one project: its details,
// team, consumables and procurement initiations with their approval chains.
// The caller closes the returned file.
func ProjectWorkbook(ctx context.Context, store *repository.Store, projectID uint) (*excelize.File, error) {
	project, err := store.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sheets := []sheet{projectSheet(project)}

	team, err := teamSheet(ctx, store, projectID)
	if err != nil {
		return nil, err
	}
	consumables, err := consumablesSheet(ctx, store, projectID)
	if err != nil {
		return nil, err
	}
	initiations, err := initiationsSheet(ctx, store, projectID)
	if err != nil {
		return nil, err
	}
	sheets = append(sheets, team, consumables, initiations)

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetProject); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}

	for _, s := range sheets {
		if err := writeSheet(f, s, headerStyle, amountStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteProjectWorkbook streams the workbook of a project to w
func WriteProjectWorkbook(ctx context.Context, store *repository.Store, projectID uint, w io.Writer) error {
	f, err := ProjectWorkbook(ctx, store, projectID)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func projectSheet(p *model.Project) sheet {
	return sheet{
		name:    SheetProject,
		headers: []string{"Title", "Vote ID", "Project Number", "Start Date", "End Date"},
		widths:  []float64{50, 22, 20, 14, 14},
		rows: [][]any{{
			p.Title, p.VoteID, p.ProjectNumber, p.StartDate.String(), p.EndDate.String(),
		}},
	}
}

func teamSheet(ctx context.Context, store *repository.Store, projectID uint) (sheet, error) {
	roles, err := store.Projects.Researchers(ctx, projectID)
	if err != nil {
		return sheet{}, err
	}

	s := sheet{
		name:    SheetTeam,
		headers: []string{"Researcher", "Organization", "Role"},
		widths:  []float64{40, 40, 24},
	}
	for _, role := range roles {
		var subject, organization string
		if role.Subject != nil {
			subject = role.Subject.DisplayName()
		}
		if role.Organization != nil {
			organization = role.Organization.Name
		}
		s.rows = append(s.rows, []any{subject, organization, role.Role.Label()})
	}
	return s, nil
}

func consumablesSheet(ctx context.Context, store *repository.Store, projectID uint) (sheet, error) {
	consumables, err := store.Projects.Consumables(ctx, projectID)
	if err != nil {
		return sheet{}, err
	}

	s := sheet{
		name: SheetConsumables,
		headers: []string{
			"Item", "Application", "Quantity Required", "Quantity Remaining",
			"Unit", "Estimated Cost", "Justification",
		},
		widths: []float64{30, 20, 18, 18, 10, 16, 50},
	}
	for _, c := range consumables {
		var item, application string
		if c.Specification != nil {
			application = c.Specification.Application
			if c.Specification.Item != nil {
				item = c.Specification.Item.Name
			}
		}
		var cost any
		if c.EstimateCost.Valid {
			cost = amount(c.EstimateCost.Decimal.StringFixed(2))
		}
		s.rows = append(s.rows, []any{
			item, application, c.QuantityRequired, c.QuantityRemaining,
			deref(c.Unit), cost, deref(c.Justification),
		})
	}
	return s, nil
}

func initiationsSheet(ctx context.Context, store *repository.Store, projectID uint) (sheet, error) {
	initiations, err := store.Projects.Initiations(ctx, projectID)
	if err != nil {
		return sheet{}, err
	}

	s := sheet{
		name: SheetInitiations,
		headers: []string{
			"Form Number", "Revision", "Effective Date",
			"RFQ Sent", "RFQ Closes", "Approval Chain",
		},
		widths: []float64{14, 10, 14, 14, 14, 80},
	}
	for _, in := range initiations {
		roles, err := store.Initiations.Roles(ctx, in.ID)
		if err != nil {
			return sheet{}, err
		}
		s.rows = append(s.rows, []any{
			in.FormNumber, in.RevisionNumber, in.EffectiveDate.String(),
			dateString(in.RFQSendDate), dateString(in.RFQCloseDate), approvalChain(roles),
		})
	}
	return s, nil
}

// approvalChain renders approval steps in date order, e.g.
// "Prepared by: A (2024-03-01); Approved by HOD: B (2024-03-05)"
func approvalChain(roles []model.InitiationRole) string {
	steps := make([]string, 0, len(roles))
	for _, role := range roles {
		who := role.SubjectID.String()
		if role.Subject != nil {
			who = role.Subject.DisplayName()
		}
		steps = append(steps, fmt.Sprintf("%s: %s (%s)", role.Role.Label(), who, role.Date))
	}
	return strings.Join(steps, "; ")
}

func writeSheet(f *excelize.File, s sheet, headerStyle, amountStyle int) error {
	if s.name != SheetProject {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
	}

	if err := f.SetSheetRow(s.name, "A1", &s.headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", s.name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}

	for i, width := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(s.name, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", s.name, i+2, err)
		}
		for j, v := range row {
			a, ok := v.(amount)
			if !ok {
				continue
			}
			if err := writeAmount(f, s.name, j+1, i+2, a, amountStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeAmount(f *excelize.File, sheet string, col, row int, a amount, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellDefault(sheet, cell, string(a)); err != nil {
		return fmt.Errorf("failed to write amount %s: %w", cell, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to set amount style %s: %w", cell, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateString(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
