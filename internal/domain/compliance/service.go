package compliance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hrconsole/internal/domain/auth"
	"hrconsole/internal/domain/directory"
	"hrconsole/internal/platform/ids"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Documents(ctx context.Context) ([]Document, error) {
	return s.store.ComplianceDocuments(ctx)
}

// Upload registers a new document version. Blank audiences default to
// everyone.
func (s *Service) Upload(ctx context.Context, doc Document) (Document, error) {
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.AssignedTo == "" {
		doc.AssignedTo = AssignAll
	}
	if doc.AssignedTo != AssignAll {
		departments, err := s.store.Departments(ctx)
		if err != nil {
			return Document{}, fmt.Errorf("load departments: %w", err)
		}
		if !knownDepartment(departments, doc.AssignedTo) {
			return Document{}, ErrUnknownAudience
		}
	}
	if doc.Version == 0 {
		doc.Version = 1.0
	}
	now := s.now()
	y, m, d := now.Date()
	doc.UploadDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	err := s.store.UpdateComplianceDocuments(ctx, func(all []Document) ([]Document, error) {
		doc.ID = ids.Next("CDOC", now, ids.Of(all, func(d Document) string { return d.ID }).Taken)
		return append(all, doc), nil
	})
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}

// DeleteDocument removes the document and every acknowledgement of it.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	err := s.store.UpdateComplianceDocuments(ctx, func(all []Document) ([]Document, error) {
		for i := range all {
			if all[i].ID == id {
				return append(all[:i], all[i+1:]...), nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return err
	}
	return s.store.UpdateAcknowledgements(ctx, func(all []Acknowledgement) ([]Acknowledgement, error) {
		out := all[:0]
		for _, ack := range all {
			if ack.DocumentID != id {
				out = append(out, ack)
			}
		}
		return out, nil
	})
}

// MyDocuments lists the documents assigned to the caller. A document without
// an acknowledgement is Pending Signature.
func (s *Service) MyDocuments(ctx context.Context, user auth.UserContext) ([]MyDocument, error) {
	self, departments, err := s.employeeScope(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.ComplianceDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	acks, err := s.store.Acknowledgements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load acknowledgements: %w", err)
	}

	out := make([]MyDocument, 0, len(docs))
	for _, doc := range docs {
		if !AssignedTo(doc, self, departments) {
			continue
		}
		mine := MyDocument{Document: doc, Status: StatusPending}
		for _, ack := range acks {
			if ack.EmployeeID == user.UserID && ack.DocumentID == doc.ID {
				mine.Status = ack.Status
				mine.AcknowledgedDate = ack.AcknowledgedDate
				break
			}
		}
		out = append(out, mine)
	}
	return out, nil
}

// Sign records the caller's signature dated today. Signing is terminal.
func (s *Service) Sign(ctx context.Context, user auth.UserContext, documentID string) (Acknowledgement, error) {
	self, departments, err := s.employeeScope(ctx, user.UserID)
	if err != nil {
		return Acknowledgement{}, err
	}
	docs, err := s.store.ComplianceDocuments(ctx)
	if err != nil {
		return Acknowledgement{}, fmt.Errorf("load documents: %w", err)
	}
	doc, ok := findDocument(docs, documentID)
	if !ok {
		return Acknowledgement{}, ErrNotFound
	}
	if !AssignedTo(doc, self, departments) {
		return Acknowledgement{}, ErrNotAssigned
	}

	y, m, d := s.now().Date()
	signedOn := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ack := Acknowledgement{EmployeeID: user.UserID, DocumentID: documentID, Status: StatusSigned, AcknowledgedDate: &signedOn}
	err = s.store.UpdateAcknowledgements(ctx, func(all []Acknowledgement) ([]Acknowledgement, error) {
		out := make([]Acknowledgement, 0, len(all)+1)
		for _, existing := range all {
			if existing.EmployeeID == user.UserID && existing.DocumentID == documentID {
				if existing.Status == StatusSigned {
					return nil, ErrAlreadySigned
				}
				continue
			}
			out = append(out, existing)
		}
		return append(out, ack), nil
	})
	if err != nil {
		return Acknowledgement{}, err
	}
	return ack, nil
}

func (s *Service) Status(ctx context.Context, documentID string) (Completion, error) {
	all, err := s.StatusAll(ctx)
	if err != nil {
		return Completion{}, err
	}
	for _, c := range all {
		if c.ID == documentID {
			return c, nil
		}
	}
	return Completion{}, ErrNotFound
}

func (s *Service) StatusAll(ctx context.Context) ([]Completion, error) {
	docs, err := s.store.ComplianceDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	departments, err := s.store.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	acks, err := s.store.Acknowledgements(ctx)
	if err != nil {
		return nil, fmt.Errorf("load acknowledgements: %w", err)
	}
	out := make([]Completion, 0, len(docs))
	for _, doc := range docs {
		out = append(out, CompletionFor(doc, employees, departments, acks))
	}
	return out, nil
}

// PendingCount is the number of assigned documents the employee has not signed.
func (s *Service) PendingCount(ctx context.Context, user auth.UserContext) (int, error) {
	docs, err := s.MyDocuments(ctx, user)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, doc := range docs {
		if doc.Status != StatusSigned {
			count++
		}
	}
	return count, nil
}

// employeeScope resolves the caller's employee record. Accounts without one
// get an empty record, which only matches documents assigned to everyone.
func (s *Service) employeeScope(ctx context.Context, userID string) (directory.Employee, []directory.Department, error) {
	employees, err := s.store.Employees(ctx)
	if err != nil {
		return directory.Employee{}, nil, fmt.Errorf("load employees: %w", err)
	}
	departments, err := s.store.Departments(ctx)
	if err != nil {
		return directory.Employee{}, nil, fmt.Errorf("load departments: %w", err)
	}
	self, _ := directory.Find(employees, userID)
	return self, departments, nil
}

func knownDepartment(departments []directory.Department, id string) bool {
	for _, dept := range departments {
		if dept.ID == id {
			return true
		}
	}
	return false
}

func findDocument(docs []Document, id string) (Document, bool) {
	for _, doc := range docs {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}
