package report

import (
	"github.com/tealeg/xlsx/v3"

	"github.com/tidepool-org/dieticians/dieticians"
)

const (
	SheetName = "Dieticians"
)

var header = []string{
	"Id",
	"Email",
	"First Name",
	"Last Name",
	"Contact Number",
	"Date Of Birth",
	"Hospital Name",
	"Hospital Street",
	"Hospital City",
}

// Report is a spreadsheet with one row per dietician. Passwords are never exported.
type Report struct {
	dieticians []*dieticians.Dietician
}

func NewReport(list []*dieticians.Dietician) Report {
	return Report{dieticians: list}
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	sh, err := report.AddSheet(SheetName)
	if err != nil {
		return nil, err
	}

	headerRow := sh.AddRow()
	for _, title := range header {
		headerRow.AddCell().SetString(title)
	}

	for _, d := range r.dieticians {
		row := sh.AddRow()
		for _, value := range []string{
			d.Id,
			d.Email,
			d.FirstName,
			d.LastName,
			d.ContactNumber,
			d.DateOfBirth,
			d.HospitalName,
			d.HospitalStreet,
			d.HospitalCity,
		} {
			row.AddCell().SetString(value)
		}
	}

	return report, nil
}
