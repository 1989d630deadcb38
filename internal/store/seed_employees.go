package store

import (
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
)

// skills maps the seed's shorthand to catalog ids.
var skills = map[string]string{
	"driving":       "s1",
	"maintenance":   "s2",
	"logistics":     "s3",
	"customer":      "s4",
	"safety":        "s5",
	"kinyarwanda":   "s6",
	"communication": "s7",
	"leadership":    "s8",
	"accounting":    "s9",
	"french":        "s10",
	"refrigerated":  "s11",
	"crossborder":   "s12",
	"itSupport":     "s13",
	"procurement":   "s14",
	"sales":         "s15",
}

// accountRoles overrides the role derived from the org chart.
var accountRoles = map[string]string{
	"M2001":  auth.RoleManager,
	"H3001":  auth.RoleHRAdmin,
	"IT4001": auth.RoleITAdmin,
}

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

func skillSet(keys ...string) []directory.Skill {
	out := make([]directory.Skill, 0, len(keys))
	for _, key := range keys {
		skill, ok := directory.SkillByID(skills[key])
		if !ok {
			panic("unknown seed skill " + key)
		}
		out = append(out, skill)
	}
	return out
}

func seedEmployees() []directory.Employee {
	return []directory.Employee{
		{
			ID: "E1001", Name: "Aline Uwase", Gender: "Female", JobTitle: "Heavy Vehicle Driver", Department: "Operations",
			ManagerID: "E1012",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2021-03-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 450000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "aline.u@pts.rw", Phone: "0788111111", Address: "KG 1 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Gisele Uwera", Phone: "0788999999"},
			Skills: skillSet("driving", "maintenance", "safety", "kinyarwanda", "french"),
		},
		{
			ID: "E1002", Name: "Bosco Ndayisenga", Gender: "Male", JobTitle: "Tour Operations Officer", Department: "Commercial",
			ManagerID: "E1027",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2020-07-20"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 600000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 8,
			Email: "bosco.n@pts.rw", Phone: "0788222222", Address: "KN 2 St, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "David Ingabire", Phone: "0788888888"},
			Skills: skillSet("logistics", "customer", "communication", "kinyarwanda"),
		},
		{
			ID: "E1003", Name: "Carine Umutesi", Gender: "Female", JobTitle: "Maintenance Officer", Department: "Operations",
			ManagerID: "M2001",
			EmploymentType: directory.EmploymentContract, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-02-10"),
			ContractType: directory.ContractFixedTerm, ProbationStatus: directory.ProbationPassed,
			ContractStartDate: datePtr("2022-02-10"), ContractEndDate: datePtr("2024-02-09"),
			BasicSalary: 550000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 12,
			Email: "carine.u@pts.rw", Phone: "0788333333", Address: "KG 9 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Chloe Mutangana", Phone: "0788777777"},
			Skills: skillSet("maintenance", "leadership", "safety"),
		},
		{
			ID: "H3001", Name: "Didier Mutangana", Gender: "Male", JobTitle: "HR Manager", Department: "Administration & Finance",
			ManagerID: "E1005",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2019-01-15"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 700000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 20,
			Email: "didier.m@pts.rw", Phone: "0788444444", Address: "KG 200 St, Gaculiro",
			EmergencyContact: directory.EmergencyContact{Name: "Eva Mutangana", Phone: "0788666666"},
			Skills: skillSet("communication", "accounting"),
		},
		{
			ID: "M2001", Name: "Jeanette Ingabire", Gender: "Female", JobTitle: "Director Operations", Department: "Operations",
			ManagerID: "E1004",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2018-05-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 800000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 15,
			Email: "jeanette.i@pts.rw", Phone: "0788222222", Address: "KN 2 St, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "David Ingabire", Phone: "0788888888"},
			Skills: skillSet("leadership", "communication"),
		},
		{
			ID: "E1004", Name: "Emmanuel Gatera", Gender: "Male", JobTitle: "Managing Director", Department: "Executive",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2017-01-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 1200000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 22,
			Email: "emmanuel.g@pts.rw", Phone: "0788555555", Address: "KG 5 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Sarah Gatera", Phone: "0788444444"},
			Skills: skillSet("leadership", "communication"),
		},
		{
			ID: "E1005", Name: "Grace Kabeja", Gender: "Female", JobTitle: "Director Administration & Finance", Department: "Administration & Finance",
			ManagerID: "E1004",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2018-01-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 900000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 4,
			Email: "grace.k@pts.rw", Phone: "0788666666", Address: "KG 6 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Peter Kabeja", Phone: "0788333333"},
			Skills: skillSet("leadership", "communication", "accounting"),
		},
		{
			ID: "E1006", Name: "Olivier Nshimiyimana", Gender: "Male", JobTitle: "Deputy Managing Director", Department: "Executive",
			ManagerID: "E1004",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-01-10"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 1100000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "olivier.n@pts.rw", Phone: "0788100100", Address: "KG 10 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Linda Nshimiye", Phone: "0788100101"},
			Skills: skillSet("leadership", "communication", "logistics"),
		},
		{
			ID: "E1007", Name: "Chantal Hakizimana", Gender: "Female", JobTitle: "Internal Auditor", Department: "Executive",
			ManagerID: "E1004",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2021-11-05"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 750000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "chantal.h@pts.rw", Phone: "0788100200", Address: "KG 11 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Eric Hakizimana", Phone: "0788100201"},
			Skills: skillSet("accounting", "safety"),
		},
		{
			ID: "IT4001", Name: "Chris Habimana", Gender: "Male", JobTitle: "IT Officer", Department: "Executive",
			ManagerID: "E1005",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-03-15"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 600000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "chris.h@pts.rw", Phone: "0788100300", Address: "KG 12 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Diane Habimana", Phone: "0788100301"},
			Skills: skillSet("itSupport", "communication"),
		},
		{
			ID: "E1010", Name: "Josiane Dusengimana", Gender: "Female", JobTitle: "Procurement Officer", Department: "Executive",
			ManagerID: "E1005",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2021-08-20"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 580000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "josiane.d@pts.rw", Phone: "0788100400", Address: "KG 13 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Kevin Dusengimana", Phone: "0788100401"},
			Skills: skillSet("procurement", "communication"),
		},
		{
			ID: "E1012", Name: "Patrick Irankunda", Gender: "Male", JobTitle: "Fleet Manager", Department: "Operations",
			ManagerID: "M2001",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2020-02-18"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 700000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "patrick.i@pts.rw", Phone: "0788100500", Address: "KG 14 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Esther Irankunda", Phone: "0788100501"},
			Skills: skillSet("logistics", "leadership", "maintenance"),
		},
		{
			ID: "E1014", Name: "David Cyusa", Gender: "Male", JobTitle: "Garage Technician", Department: "Operations",
			ManagerID: "E1003",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-09-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 350000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "david.c@pts.rw", Phone: "0788100600", Address: "KG 15 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Sandrine Cyusa", Phone: "0788100601"},
			Skills: skillSet("maintenance"),
		},
		{
			ID: "E1019", Name: "Daniel Hakizimana", Gender: "Male", JobTitle: "Chief Accountant", Department: "Administration & Finance",
			ManagerID: "E1005",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2019-06-11"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 720000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "daniel.h@pts.rw", Phone: "0788100700", Address: "KG 16 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Solange Hakizimana", Phone: "0788100701"},
			Skills: skillSet("accounting", "leadership"),
		},
		{
			ID: "E1024", Name: "Noella Manzi", Gender: "Female", JobTitle: "Receptionist", Department: "Administration & Finance",
			ManagerID: "H3001",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2023-01-09"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 300000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "noella.m@pts.rw", Phone: "0788100800", Address: "KG 17 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Fabrice Manzi", Phone: "0788100801"},
			Skills: skillSet("communication", "customer"),
		},
		{
			ID: "E1026", Name: "Eliane Keza", Gender: "Female", JobTitle: "Director Commercial", Department: "Commercial",
			ManagerID: "E1004",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2021-04-12"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 900000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "eliane.k@pts.rw", Phone: "0788100900", Address: "KG 18 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Claude Keza", Phone: "0788100901"},
			Skills: skillSet("leadership", "sales", "communication"),
		},
		{
			ID: "E1027", Name: "Claude Rugamba", Gender: "Male", JobTitle: "Tour Operations Manager", Department: "Commercial",
			ManagerID: "E1026",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2021-07-22"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 700000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "claude.r@pts.rw", Phone: "0788101000", Address: "KG 19 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Fiona Rugamba", Phone: "0788101001"},
			Skills: skillSet("logistics", "customer", "leadership"),
		},
		{
			ID: "E1028", Name: "Fiona Gakire", Gender: "Female", JobTitle: "Sales & Marketing Manager", Department: "Commercial",
			ManagerID: "E1026",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-05-30"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 720000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "fiona.g@pts.rw", Phone: "0788101100", Address: "KG 20 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Jean Gakire", Phone: "0788101101"},
			Skills: skillSet("sales", "communication", "leadership"),
		},
		{
			ID: "E1013", Name: "Esther Manzi", Gender: "Female", JobTitle: "Inspection & Compliance Officer", Department: "Operations",
			ManagerID: "M2001",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2021-09-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 550000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "esther.m@pts.rw", Phone: "0788101200", Address: "KG 21 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "David Manzi", Phone: "0788101201"},
			Skills: skillSet("safety"),
		},
		{
			ID: "E1015", Name: "Sandrine Keza", Gender: "Female", JobTitle: "Fuel Management Officer", Department: "Operations",
			ManagerID: "E1012",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-04-11"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 500000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "sandrine.k@pts.rw", Phone: "0788101300", Address: "KG 22 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Kevin Keza", Phone: "0788101301"},
			Skills: skillSet("logistics"),
		},
		{
			ID: "E1017", Name: "Samuel Gakire", Gender: "Male", JobTitle: "Heavy Vehicle Driver", Department: "Operations",
			ManagerID: "E1012",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2023-02-20"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 380000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "samuel.g@pts.rw", Phone: "0788101400", Address: "KG 23 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Marie Gakire", Phone: "0788101401"},
			Skills: skillSet("driving", "safety"),
		},
		{
			ID: "E1020", Name: "Solange Mugisha", Gender: "Female", JobTitle: "Accountant", Department: "Administration & Finance",
			ManagerID: "E1019",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2020-10-10"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 550000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "solange.m@pts.rw", Phone: "0788101500", Address: "KG 24 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Yves Mugisha", Phone: "0788101501"},
			Skills: skillSet("accounting"),
		},
		{
			ID: "E1029", Name: "Jean Nshimiyimana", Gender: "Male", JobTitle: "Sales Officer", Department: "Commercial",
			ManagerID: "E1028",
			EmploymentType: directory.EmploymentPermanent, EmploymentStatus: directory.StatusActive, DateOfHire: date("2022-11-01"),
			ContractType: directory.ContractFullTime, ProbationStatus: directory.ProbationPassed,
			BasicSalary: 500000, PayFrequency: directory.PayMonthly, AnnualLeaveBalance: 18,
			Email: "jean.n@pts.rw", Phone: "0788101600", Address: "KG 25 Ave, Kigali",
			EmergencyContact: directory.EmergencyContact{Name: "Linda Nshimiye", Phone: "0788101601"},
			Skills: skillSet("sales", "customer"),
		},
	}
}
