package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/platform/ids"
)

const notifyPayslipReady = "payslip_ready"

type Service struct {
	store    Store
	runner   Runner
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, runner Runner, notifier Notifier) *Service {
	return &Service{store: store, runner: runner, notifier: notifier, now: time.Now}
}

func (s *Service) ListAllowances(ctx context.Context) ([]ListedAllowance, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	allowances, err := s.store.Allowances(ctx)
	if err != nil {
		return nil, fmt.Errorf("load allowances: %w", err)
	}
	out := make([]ListedAllowance, 0, len(allowances))
	for _, a := range allowances {
		listed := ListedAllowance{Allowance: a}
		if emp, ok := directory.Find(employees, a.EmployeeID); ok {
			listed.EmployeeName = emp.Name
			listed.Department = emp.Department
		}
		out = append(out, listed)
	}
	return out, nil
}

// CreateAllowance prepends the allowance so the newest shows first.
func (s *Service) CreateAllowance(ctx context.Context, a Allowance) (Allowance, error) {
	if err := s.checkEmployee(ctx, a.EmployeeID); err != nil {
		return Allowance{}, err
	}
	if a.Status == "" {
		a.Status = AllowanceActive
	}
	err := s.store.UpdateAllowances(ctx, func(all []Allowance) ([]Allowance, error) {
		a.ID = ids.Next("DA", s.now(), ids.Of(all, func(item Allowance) string { return item.ID }).Taken)
		return append([]Allowance{a}, all...), nil
	})
	if err != nil {
		return Allowance{}, err
	}
	return a, nil
}

func (s *Service) UpdateAllowance(ctx context.Context, id string, a Allowance) (Allowance, error) {
	if err := s.checkEmployee(ctx, a.EmployeeID); err != nil {
		return Allowance{}, err
	}
	a.ID = id
	if a.Status == "" {
		a.Status = AllowanceActive
	}
	err := s.store.UpdateAllowances(ctx, func(all []Allowance) ([]Allowance, error) {
		for i := range all {
			if all[i].ID == id {
				all[i] = a
				return all, nil
			}
		}
		return nil, ErrAllowanceNotFound
	})
	if err != nil {
		return Allowance{}, err
	}
	return a, nil
}

func (s *Service) DeleteAllowance(ctx context.Context, id string) error {
	return s.store.UpdateAllowances(ctx, func(all []Allowance) ([]Allowance, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i], all[i+1:]...), nil
			}
		}
		return nil, ErrAllowanceNotFound
	})
}

func (s *Service) checkEmployee(ctx context.Context, employeeID string) error {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	if _, ok := directory.Find(employees, employeeID); !ok {
		return ErrEmployeeNotFound
	}
	return nil
}

// Preview computes a payslip without storing it.
func (s *Service) Preview(ctx context.Context, employeeID, payPeriod string) (Payslip, error) {
	period, err := ParsePayPeriod(payPeriod)
	if err != nil {
		return Payslip{}, err
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return Payslip{}, fmt.Errorf("load employees: %w", err)
	}
	emp, ok := directory.Find(employees, employeeID)
	if !ok {
		return Payslip{}, ErrEmployeeNotFound
	}
	allowances, err := s.store.Allowances(ctx)
	if err != nil {
		return Payslip{}, fmt.Errorf("load allowances: %w", err)
	}
	return ComputePayslip(emp, allowances, period, s.now()), nil
}

// Run generates the period through the job runner when one is configured.
func (s *Service) Run(ctx context.Context, payPeriod string) (RunResult, error) {
	if s.runner == nil {
		return s.Generate(ctx, payPeriod)
	}
	details, err := s.runner.RunNow(ctx, JobPayrollRun, func(ctx context.Context) (any, error) {
		return s.Generate(ctx, payPeriod)
	})
	if err != nil {
		return RunResult{}, err
	}
	result, _ := details.(RunResult)
	return result, nil
}

// Generate computes a payslip for every employee and stores those the period
// does not have yet. Existing payslips are never replaced.
func (s *Service) Generate(ctx context.Context, payPeriod string) (RunResult, error) {
	period, err := ParsePayPeriod(payPeriod)
	if err != nil {
		return RunResult{}, err
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load employees: %w", err)
	}
	allowances, err := s.store.Allowances(ctx)
	if err != nil {
		return RunResult{}, fmt.Errorf("load allowances: %w", err)
	}

	generatedAt := s.now()
	result := RunResult{PayPeriod: period, IDs: []string{}}
	var created []Payslip
	err = s.store.UpdatePayslips(ctx, func(all []Payslip) ([]Payslip, error) {
		existing := make(map[string]struct{}, len(all))
		for _, slip := range all {
			existing[slip.ID] = struct{}{}
		}
		fresh := make([]Payslip, 0, len(employees))
		for _, emp := range employees {
			slip := ComputePayslip(emp, allowances, period, generatedAt)
			if _, ok := existing[slip.ID]; ok {
				result.Skipped++
				continue
			}
			fresh = append(fresh, slip)
			result.IDs = append(result.IDs, slip.ID)
		}
		result.Created = len(fresh)
		created = fresh
		return append(fresh, all...), nil
	})
	if err != nil {
		return RunResult{}, err
	}

	for _, slip := range created {
		s.notify(ctx, slip)
	}
	slog.Info("payroll generated", "payPeriod", period, "created", result.Created, "skipped", result.Skipped)
	return result, nil
}

func (s *Service) notify(ctx context.Context, slip Payslip) {
	if s.notifier == nil {
		return
	}
	title := "Payslip available"
	body := fmt.Sprintf("Your payslip for %s is ready.", slip.PayPeriod)
	if err := s.notifier.Notify(ctx, slip.EmployeeID, notifyPayslipReady, title, body); err != nil {
		slog.Warn("payslip notification failed", "payslipId", slip.ID, "err", err)
	}
}

// Payslips lists what the caller may see: everything for payroll managers,
// optionally narrowed to one employee, otherwise only their own.
func (s *Service) Payslips(ctx context.Context, user auth.UserContext, employeeID string) ([]Payslip, error) {
	all, err := s.store.Payslips(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payslips: %w", err)
	}
	if !auth.Allowed(user.RoleName, auth.PermPayrollManage) {
		employeeID = user.UserID
	}
	out := make([]Payslip, 0)
	for _, slip := range all {
		if employeeID != "" && slip.EmployeeID != employeeID {
			continue
		}
		out = append(out, slip)
	}
	return out, nil
}

func (s *Service) Payslip(ctx context.Context, user auth.UserContext, id string) (Payslip, error) {
	all, err := s.store.Payslips(ctx)
	if err != nil {
		return Payslip{}, fmt.Errorf("load payslips: %w", err)
	}
	for _, slip := range all {
		if slip.ID != id {
			continue
		}
		if slip.EmployeeID != user.UserID && !auth.Allowed(user.RoleName, auth.PermPayrollManage) {
			return Payslip{}, ErrForbidden
		}
		return slip, nil
	}
	return Payslip{}, ErrPayslipNotFound
}

// PayslipPDF renders a stored payslip the caller may see.
func (s *Service) PayslipPDF(ctx context.Context, user auth.UserContext, id string) ([]byte, error) {
	slip, err := s.Payslip(ctx, user, id)
	if err != nil {
		return nil, err
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	emp, _ := directory.Find(employees, slip.EmployeeID)
	return RenderPayslipPDF(slip, emp)
}

// Register joins the period's payslips with employee names, sorted by name.
func (s *Service) Register(ctx context.Context, payPeriod string) ([]RegisterRow, error) {
	period, err := ParsePayPeriod(payPeriod)
	if err != nil {
		return nil, err
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	all, err := s.store.Payslips(ctx)
	if err != nil {
		return nil, fmt.Errorf("load payslips: %w", err)
	}
	rows := make([]RegisterRow, 0)
	for _, slip := range all {
		if slip.PayPeriod != period {
			continue
		}
		row := RegisterRow{EmployeeID: slip.EmployeeID, Payslip: slip}
		if emp, ok := directory.Find(employees, slip.EmployeeID); ok {
			row.EmployeeName = emp.Name
			row.Department = emp.Department
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].EmployeeName < rows[j].EmployeeName })
	return rows, nil
}

// LatestTotals sums the most recently generated period. ok is false when no
// payslip exists.
func (s *Service) LatestTotals(ctx context.Context) (PeriodTotals, bool, error) {
	all, err := s.store.Payslips(ctx)
	if err != nil {
		return PeriodTotals{}, false, fmt.Errorf("load payslips: %w", err)
	}
	if len(all) == 0 {
		return PeriodTotals{}, false, nil
	}
	latest := all[0]
	for _, slip := range all[1:] {
		if slip.GeneratedAt.After(latest.GeneratedAt) {
			latest = slip
		}
	}
	return Totals(all, latest.PayPeriod), true, nil
}

func Totals(payslips []Payslip, payPeriod string) PeriodTotals {
	totals := PeriodTotals{PayPeriod: payPeriod}
	for _, slip := range payslips {
		if slip.PayPeriod != payPeriod {
			continue
		}
		totals.EmployeeCount++
		totals.TotalGross += slip.GrossSalary
		totals.TotalDeductions += slip.TotalDeductions
		totals.TotalNet += slip.NetSalary
	}
	return totals
}
