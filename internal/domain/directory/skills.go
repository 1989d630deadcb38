package directory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hrconsole/internal/domain/auth"
)

var (
	ErrUnknownSkill      = errors.New("skill not found")
	ErrUnknownTargetRole = errors.New("target role not found")
)

const (
	SkillTechnical = "Technical"
	SkillSoft      = "Soft"
	SkillLanguage  = "Language"
)

// SkillCatalog is every skill an employee profile may carry.
var SkillCatalog = []Skill{
	{ID: "s1", Name: "Heavy Vehicle Driving", Category: SkillTechnical},
	{ID: "s2", Name: "Basic Vehicle Maintenance", Category: SkillTechnical},
	{ID: "s3", Name: "Logistics Planning", Category: SkillTechnical},
	{ID: "s4", Name: "Customer Service", Category: SkillSoft},
	{ID: "s5", Name: "Safety Compliance", Category: SkillTechnical},
	{ID: "s6", Name: "Kinyarwanda", Category: SkillLanguage},
	{ID: "s7", Name: "Communication", Category: SkillSoft},
	{ID: "s8", Name: "Team Leadership", Category: SkillSoft},
	{ID: "s9", Name: "Accounting", Category: SkillTechnical},
	{ID: "s10", Name: "French", Category: SkillLanguage},
	{ID: "s11", Name: "Refrigerated Transport", Category: SkillTechnical},
	{ID: "s12", Name: "Cross-Border Transport", Category: SkillTechnical},
	{ID: "s13", Name: "IT Support", Category: SkillTechnical},
	{ID: "s14", Name: "Procurement", Category: SkillTechnical},
	{ID: "s15", Name: "Sales & Marketing", Category: SkillSoft},
}

// TargetRole is a position used for gap analysis.
type TargetRole struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	RequiredSkills []string `json:"requiredSkills"`
}

var TargetRoles = []TargetRole{
	{ID: "TR1", Name: "Senior Logistics Lead", RequiredSkills: []string{"s3", "s8", "s7", "s4"}},
	{ID: "TR2", Name: "Specialized Cross-Border Driver", RequiredSkills: []string{"s1", "s12", "s5", "s2"}},
	{ID: "TR3", Name: "Refrigerated Goods Specialist", RequiredSkills: []string{"s1", "s11", "s4", "s5"}},
}

// SkillGap splits a target role's requirements into what the employee
// already has and what they still lack.
type SkillGap struct {
	EmployeeID string  `json:"employeeId"`
	Role       string  `json:"role"`
	Matching   []Skill `json:"matching"`
	Missing    []Skill `json:"missing"`
}

func SkillByID(id string) (Skill, bool) {
	i := slices.IndexFunc(SkillCatalog, func(s Skill) bool { return s.ID == id })
	if i < 0 {
		return Skill{}, false
	}
	return SkillCatalog[i], true
}

func TargetRoleByID(id string) (TargetRole, bool) {
	i := slices.IndexFunc(TargetRoles, func(r TargetRole) bool { return r.ID == id })
	if i < 0 {
		return TargetRole{}, false
	}
	return TargetRoles[i], true
}

func hasSkill(emp Employee, skillID string) bool {
	return slices.ContainsFunc(emp.Skills, func(s Skill) bool { return s.ID == skillID })
}

// AnalyzeSkillGap compares by skill id, in the role's requirement order.
func AnalyzeSkillGap(emp Employee, role TargetRole) SkillGap {
	gap := SkillGap{EmployeeID: emp.ID, Role: role.Name, Matching: []Skill{}, Missing: []Skill{}}
	for _, id := range role.RequiredSkills {
		skill, ok := SkillByID(id)
		if !ok {
			continue
		}
		if hasSkill(emp, id) {
			gap.Matching = append(gap.Matching, skill)
		} else {
			gap.Missing = append(gap.Missing, skill)
		}
	}
	return gap
}

// AddSkill gives a visible employee a catalog skill. Adding a skill the
// employee already has changes nothing.
func (s *Service) AddSkill(ctx context.Context, user auth.UserContext, employeeID, skillID string) (Employee, error) {
	skill, ok := SkillByID(skillID)
	if !ok {
		return Employee{}, ErrUnknownSkill
	}
	return s.editSkills(ctx, user, employeeID, func(emp *Employee) {
		if !hasSkill(*emp, skillID) {
			emp.Skills = append(emp.Skills, skill)
		}
	})
}

func (s *Service) RemoveSkill(ctx context.Context, user auth.UserContext, employeeID, skillID string) (Employee, error) {
	return s.editSkills(ctx, user, employeeID, func(emp *Employee) {
		emp.Skills = slices.DeleteFunc(emp.Skills, func(sk Skill) bool { return sk.ID == skillID })
	})
}

func (s *Service) editSkills(ctx context.Context, user auth.UserContext, employeeID string, edit func(*Employee)) (Employee, error) {
	var updated Employee
	err := s.store.UpdateEmployees(ctx, func(all []Employee) ([]Employee, error) {
		if !CanView(user, all, employeeID) {
			return nil, ErrNotFound
		}
		for i := range all {
			if all[i].ID != employeeID {
				continue
			}
			edit(&all[i])
			if all[i].Skills == nil {
				all[i].Skills = []Skill{}
			}
			updated = all[i]
			return all, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return Employee{}, err
	}
	return updated, nil
}

// SkillGap analyses a visible employee against one target role.
func (s *Service) SkillGap(ctx context.Context, user auth.UserContext, employeeID, roleID string) (SkillGap, error) {
	role, ok := TargetRoleByID(roleID)
	if !ok {
		return SkillGap{}, ErrUnknownTargetRole
	}
	emp, err := s.Get(ctx, user, employeeID)
	if err != nil {
		return SkillGap{}, fmt.Errorf("skill gap: %w", err)
	}
	return AnalyzeSkillGap(emp, role), nil
}
