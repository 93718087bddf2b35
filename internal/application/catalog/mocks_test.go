package catalog

import (
	"context"

	"extinsia/internal/domain/catalog"
	"extinsia/internal/shared/logger"
)

type mockProductRepository struct {
	SaveFunc       func(ctx context.Context, p *catalog.Product) error
	UpdateFunc     func(ctx context.Context, p *catalog.Product) error
	DeleteFunc     func(ctx context.Context, code string) (bool, error)
	FindByCodeFunc func(ctx context.Context, code string) (*catalog.Product, error)
	ListFunc       func(ctx context.Context) ([]*catalog.Product, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, code string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return true, nil
}

func (m *mockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockExtinguisherRepository struct {
	SaveFunc       func(ctx context.Context, e *catalog.Extinguisher) error
	UpdateFunc     func(ctx context.Context, e *catalog.Extinguisher) error
	DeleteFunc     func(ctx context.Context, code string) (bool, error)
	FindByCodeFunc func(ctx context.Context, code string) (*catalog.Extinguisher, error)
	ListFunc       func(ctx context.Context) ([]*catalog.Extinguisher, error)
}

func (m *mockExtinguisherRepository) Save(ctx context.Context, e *catalog.Extinguisher) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockExtinguisherRepository) Update(ctx context.Context, e *catalog.Extinguisher) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockExtinguisherRepository) Delete(ctx context.Context, code string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, code)
	}
	return true, nil
}

func (m *mockExtinguisherRepository) FindByCode(ctx context.Context, code string) (*catalog.Extinguisher, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockExtinguisherRepository) List(ctx context.Context) ([]*catalog.Extinguisher, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
