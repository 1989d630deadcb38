package directory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var CSVHeader = []string{
	"name",
	"gender",
	"email",
	"phone",
	"address",
	"jobTitle",
	"department",
	"employmentType",
	"basicSalary",
	"emergencyContactName",
	"emergencyContactPhone",
	"dateOfHire",
	"employmentStatus",
	"contractType",
}

const dateLayout = "2006-01-02"

// WriteTemplate writes the header row only.
func WriteTemplate(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

// ExportCSV writes the roster in template column order. Fields holding a comma,
// quote or newline are quoted with embedded quotes doubled.
func ExportCSV(w io.Writer, employees []Employee) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, emp := range employees {
		if err := writer.Write(exportRow(emp)); err != nil {
			return fmt.Errorf("write row %s: %w", emp.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func exportRow(emp Employee) []string {
	hired := ""
	if !emp.DateOfHire.IsZero() {
		hired = emp.DateOfHire.Format(dateLayout)
	}
	return []string{
		emp.Name,
		emp.Gender,
		emp.Email,
		emp.Phone,
		emp.Address,
		emp.JobTitle,
		emp.Department,
		emp.EmploymentType,
		strconv.FormatFloat(emp.BasicSalary, 'f', -1, 64),
		emp.EmergencyContact.Name,
		emp.EmergencyContact.Phone,
		hired,
		emp.EmploymentStatus,
		emp.ContractType,
	}
}

// ParseCSV reads an import file into new employee records. Ids are derived from
// now so a batch gets E<millis><row>. Rows without a name are skipped.
func ParseCSV(data []byte, now time.Time) (ImportResult, error) {
	if countNonEmptyLines(data) < 2 {
		return ImportResult{}, ErrCSVTooShort
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := readRecord(reader)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read header: %w", err)
	}
	if !headerMatches(header) {
		return ImportResult{}, ErrCSVInvalidHeader
	}

	result := ImportResult{Employees: make([]Employee, 0)}
	stamp := now.UnixMilli()
	index := 0
	for {
		record, err := readRecord(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return ImportResult{}, fmt.Errorf("read row %d: %w", index+1, err)
		}
		if isBlank(record) {
			continue
		}
		emp, ok := employeeFromRecord(record, fmt.Sprintf("E%d%d", stamp, index), now)
		index++
		if !ok {
			result.Skipped++
			continue
		}
		result.Employees = append(result.Employees, emp)
	}
	result.Imported = len(result.Employees)
	return result, nil
}

func readRecord(reader *csv.Reader) ([]string, error) {
	for {
		record, err := reader.Read()
		if err != nil {
			return nil, err
		}
		if !isBlank(record) {
			return record, nil
		}
	}
}

func headerMatches(header []string) bool {
	if len(header) != len(CSVHeader) {
		return false
	}
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) != CSVHeader[i] {
			return false
		}
	}
	return true
}

func employeeFromRecord(record []string, id string, now time.Time) (Employee, bool) {
	get := func(idx int) string {
		if idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	name := get(0)
	if name == "" {
		return Employee{}, false
	}

	gender := get(1)
	if gender != GenderMale && gender != GenderFemale {
		gender = GenderFemale
	}
	salary, err := strconv.ParseFloat(get(8), 64)
	if err != nil {
		salary = 0
	}
	hired := today(now)
	if raw := get(11); raw != "" {
		if parsed, err := time.Parse(dateLayout, raw); err == nil {
			hired = parsed
		}
	}

	return Employee{
		ID:                 id,
		Name:               name,
		Gender:             gender,
		Email:              get(2),
		Phone:              get(3),
		Address:            get(4),
		JobTitle:           get(5),
		Department:         get(6),
		EmploymentType:     orDefault(get(7), EmploymentPermanent),
		BasicSalary:        salary,
		EmergencyContact:   EmergencyContact{Name: get(9), Phone: get(10)},
		DateOfHire:         hired,
		EmploymentStatus:   orDefault(get(12), StatusActive),
		ContractType:       orDefault(get(13), ContractFullTime),
		ProbationStatus:    ProbationPending,
		PayFrequency:       PayMonthly,
		AnnualLeaveBalance: DefaultAnnualLeave,
		Skills:             []Skill{},
	}, true
}

func countNonEmptyLines(data []byte) int {
	count := 0
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
