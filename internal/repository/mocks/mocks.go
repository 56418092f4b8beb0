package mocks

import (
	"context"

	"github.com/paperbase/paperbase/internal/domain/activity"
	"github.com/paperbase/paperbase/internal/domain/compound"
	"github.com/paperbase/paperbase/internal/domain/paper"
	"github.com/paperbase/paperbase/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// ProjectCatalog is a mock for project.Repository.
type ProjectCatalog struct {
	mock.Mock
}

func (m *ProjectCatalog) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectCatalog) Get(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectCatalog) List(ctx context.Context) ([]project.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectCatalog) Update(ctx context.Context, id int64, name string, fields []project.Field) error {
	args := m.Called(ctx, id, name, fields)
	return args.Error(0)
}

func (m *ProjectCatalog) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectCatalog) ActiveID(ctx context.Context) (*int64, error) {
	args := m.Called(ctx)
	if id, ok := args.Get(0).(*int64); ok {
		return id, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectCatalog) SetActiveID(ctx context.Context, id *int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PaperStore is a mock for paper.Repository.
type PaperStore struct {
	mock.Mock
}

func (m *PaperStore) Create(ctx context.Context, p *paper.Paper, data []byte) error {
	args := m.Called(ctx, p, data)
	return args.Error(0)
}

func (m *PaperStore) List(ctx context.Context) ([]paper.Paper, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]paper.Paper); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaperStore) Get(ctx context.Context, id int64) (*paper.Paper, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*paper.Paper); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaperStore) GetBinary(ctx context.Context, id int64) ([]byte, error) {
	args := m.Called(ctx, id)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PaperStore) Update(ctx context.Context, p *paper.Paper) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PaperStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PaperStore) Search(ctx context.Context, query string, opts paper.SearchOptions) ([]paper.Paper, error) {
	args := m.Called(ctx, query, opts)
	if list, ok := args.Get(0).([]paper.Paper); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CompoundStore is a mock for compound.Repository.
type CompoundStore struct {
	mock.Mock
}

func (m *CompoundStore) Create(ctx context.Context, c *compound.Compound) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompoundStore) Get(ctx context.Context, id int64) (*compound.Compound, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*compound.Compound); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompoundStore) ListForPaper(ctx context.Context, pdfID int64) ([]compound.Compound, error) {
	args := m.Called(ctx, pdfID)
	if list, ok := args.Get(0).([]compound.Compound); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompoundStore) Update(ctx context.Context, c *compound.Compound) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompoundStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityLog is a mock for activity.Repository.
type ActivityLog struct {
	mock.Mock
}

func (m *ActivityLog) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityLog) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
