package compliance

import (
	"context"

	"hrconsole/internal/domain/directory"
)

type Store interface {
	ComplianceDocuments(ctx context.Context) ([]Document, error)
	UpdateComplianceDocuments(ctx context.Context, fn func([]Document) ([]Document, error)) error
	Acknowledgements(ctx context.Context) ([]Acknowledgement, error)
	UpdateAcknowledgements(ctx context.Context, fn func([]Acknowledgement) ([]Acknowledgement, error)) error
	Employees(ctx context.Context) ([]directory.Employee, error)
	Departments(ctx context.Context) ([]directory.Department, error)
}
