package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/squadhelper/tryouts/internal/dependencies/clock"
	"github.com/squadhelper/tryouts/internal/model"
)

// Service renders rosters and attendance reports as tabular PDF documents.
// It consumes a sport name plus its current roster and never mutates
// anything.
type Service struct {
	clock clock.Clock
}

// New creates a new export service
func New(clk clock.Clock) *Service {
	return &Service{clock: clk}
}

// PlayerList writes a PDF roster for the given sport
func (s *Service) PlayerList(w io.Writer, sport string, roster []model.PlayerEntry) error {
	doc := s.newDocument(fmt.Sprintf("%s Players List", sport))

	header := []column{
		{"Name", 40},
		{"Age", 15},
		{"Gender", 25},
		{"Contact", 40},
		{"Level", 30},
		{"Sport", 30},
	}
	rows := make([][]string, len(roster))
	for i, p := range roster {
		rows[i] = []string{
			p.Name,
			strconv.Itoa(p.Age),
			p.Gender,
			p.Contact,
			string(p.Level),
			p.Sport,
		}
	}

	writeTable(doc, header, rows)
	return doc.Output(w)
}

// AttendanceReport writes a PDF attendance report for the given sport.
// Unmarked players show as "Not Marked".
func (s *Service) AttendanceReport(w io.Writer, sport string, roster []model.PlayerEntry) error {
	doc := s.newDocument(fmt.Sprintf("%s Attendance Report", sport))

	header := []column{
		{"Name", 50},
		{"Level", 40},
		{"Sport", 45},
		{"Attendance", 45},
	}
	rows := make([][]string, len(roster))
	for i, p := range roster {
		rows[i] = []string{
			p.Name,
			string(p.Level),
			p.Sport,
			attendanceLabel(p.Attendance),
		}
	}

	writeTable(doc, header, rows)
	return doc.Output(w)
}

func attendanceLabel(attendance *bool) string {
	switch {
	case attendance == nil:
		return "Not Marked"
	case *attendance:
		return "Present"
	default:
		return "Absent"
	}
}

type column struct {
	title string
	width float64
}

func (s *Service) newDocument(title string) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, title)
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 8, "Generated on: "+s.clock.Now().Format("02/01/2006"))
	doc.Ln(12)

	return doc
}

func writeTable(doc *fpdf.Fpdf, header []column, rows [][]string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(128, 0, 128)
	doc.SetTextColor(255, 255, 255)
	for _, col := range header {
		doc.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			doc.CellFormat(header[i].width, 6, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}
}
