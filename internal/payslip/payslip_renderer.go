package payslip

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Data is everything the renderer needs for one payslip. It is a plain value
// so the renderer stays decoupled from the payroll entities.
type Data struct {
	EmployeeID   string
	EmployeeName string
	Month        string

	BasicSalary    int64
	HRA            int64
	DA             int64
	Travel         int64
	Medical        int64
	OtherAllowance int64

	PF             int64
	Tax            int64
	Insurance      int64
	LoanEMI        int64
	LeaveDeduction int64

	Gross           int64
	TotalDeductions int64
	Net             int64

	AttendanceDays string
	LeavesTaken    string
}

//go:generate mockgen -source=payslip_renderer.go -destination=mock/payslip_renderer_mock.go -package=mock
type Renderer interface {
	Render(data Data) (string, error)
}

// PDFRenderer writes payslips under a storage directory at the conventional
// path Payslip_<employeeID>_<month>.pdf. Deterministic for identical input;
// a prior file at the same path is overwritten.
type PDFRenderer struct {
	dir string
}

func NewPDFRenderer(dir string) *PDFRenderer {
	if dir == "" {
		dir = filepath.Join("storage", "payslips")
	}
	return &PDFRenderer{dir: dir}
}

func (r *PDFRenderer) Render(data Data) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(r.dir, FileName(data.EmployeeID, data.Month))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", data.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", data.Month))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days worked: %s   Leaves taken: %s", data.AttendanceDays, data.LeavesTaken))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Basic Salary", data.BasicSalary)
	line(pdf, "HRA", data.HRA)
	line(pdf, "DA", data.DA)
	line(pdf, "Travel Allowance", data.Travel)
	line(pdf, "Medical Allowance", data.Medical)
	if data.OtherAllowance > 0 {
		line(pdf, "Other Allowance", data.OtherAllowance)
	}
	line(pdf, "Gross Earnings", data.Gross)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Provident Fund", data.PF)
	line(pdf, "Tax", data.Tax)
	line(pdf, "Insurance", data.Insurance)
	line(pdf, "Loan EMI", data.LoanEMI)
	line(pdf, "Leave Deduction", data.LeaveDeduction)
	line(pdf, "Total Deductions", data.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	line(pdf, "Net Pay", data.Net)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

func line(pdf *gofpdf.Fpdf, label string, amount int64) {
	pdf.Cell(100, 7, label)
	pdf.Cell(0, 7, fmt.Sprintf("%d", amount))
	pdf.Ln(7)
}

// FileName is the conventional artifact name for one (employee, month).
func FileName(employeeID, month string) string {
	return fmt.Sprintf("Payslip_%s_%s.pdf", employeeID, month)
}
