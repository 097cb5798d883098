package usecase

import (
	"github.com/rjfoods/storefront-api/internal/domain/entity"
	"github.com/rjfoods/storefront-api/internal/domain/repository"
)

type mockProductRepo struct {
	createFn  func(p *entity.Product) error
	getByIDFn func(id string) (*entity.Product, error)
	updateFn  func(p *entity.Product) error
	deleteFn  func(id string) error
	listFn    func(category string, limit, offset int) ([]*entity.Product, error)
}

func (m *mockProductRepo) Create(p *entity.Product) error { return m.createFn(p) }
func (m *mockProductRepo) GetByID(id string) (*entity.Product, error) {
	return m.getByIDFn(id)
}
func (m *mockProductRepo) Update(p *entity.Product) error { return m.updateFn(p) }
func (m *mockProductRepo) Delete(id string) error         { return m.deleteFn(id) }
func (m *mockProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	return m.listFn(category, limit, offset)
}

type mockOrderRepo struct {
	createFn       func(o *entity.Order) error
	getByIDFn      func(id string) (*entity.Order, error)
	listByUserFn   func(userID string) ([]*entity.Order, error)
	listFn         func(f repository.OrderFilter) ([]*entity.Order, error)
	listAllFn      func() ([]*entity.Order, error)
	updateStatusFn func(id, status string) error
}

func (m *mockOrderRepo) Create(o *entity.Order) error { return m.createFn(o) }
func (m *mockOrderRepo) GetByID(id string) (*entity.Order, error) {
	return m.getByIDFn(id)
}
func (m *mockOrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	return m.listByUserFn(userID)
}
func (m *mockOrderRepo) List(f repository.OrderFilter) ([]*entity.Order, error) {
	return m.listFn(f)
}
func (m *mockOrderRepo) ListAll() ([]*entity.Order, error) { return m.listAllFn() }
func (m *mockOrderRepo) UpdateStatus(id, status string) error {
	return m.updateStatusFn(id, status)
}

type mockPaymentRepo struct {
	createFn       func(p *entity.PaymentMethod) error
	getByIDFn      func(id string) (*entity.PaymentMethod, error)
	getByNameFn    func(name string) (*entity.PaymentMethod, error)
	listFn         func() ([]*entity.PaymentMethod, error)
	listActiveFn   func() ([]*entity.PaymentMethod, error)
	updateStatusFn func(id, status string) error
}

func (m *mockPaymentRepo) Create(p *entity.PaymentMethod) error { return m.createFn(p) }
func (m *mockPaymentRepo) GetByID(id string) (*entity.PaymentMethod, error) {
	return m.getByIDFn(id)
}
func (m *mockPaymentRepo) GetByName(name string) (*entity.PaymentMethod, error) {
	return m.getByNameFn(name)
}
func (m *mockPaymentRepo) List() ([]*entity.PaymentMethod, error) { return m.listFn() }
func (m *mockPaymentRepo) ListActive() ([]*entity.PaymentMethod, error) {
	return m.listActiveFn()
}
func (m *mockPaymentRepo) UpdateStatus(id, status string) error {
	return m.updateStatusFn(id, status)
}

type mockPageRepo struct {
	getFn    func(slug string) (*entity.PageContent, error)
	upsertFn func(p *entity.PageContent) error
	listFn   func() ([]*entity.PageContent, error)
}

func (m *mockPageRepo) Get(slug string) (*entity.PageContent, error) { return m.getFn(slug) }
func (m *mockPageRepo) Upsert(p *entity.PageContent) error           { return m.upsertFn(p) }
func (m *mockPageRepo) List() ([]*entity.PageContent, error)         { return m.listFn() }

type mockProfileRepo struct {
	createFn     func(p *entity.Profile) error
	getByIDFn    func(id string) (*entity.Profile, error)
	getByEmailFn func(email string) (*entity.Profile, error)
	updateFn     func(p *entity.Profile) error
	updateRoleFn func(id, role string) error
	listFn       func(limit, offset int) ([]*entity.Profile, error)
}

func (m *mockProfileRepo) Create(p *entity.Profile) error { return m.createFn(p) }
func (m *mockProfileRepo) GetByID(id string) (*entity.Profile, error) {
	return m.getByIDFn(id)
}
func (m *mockProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	return m.getByEmailFn(email)
}
func (m *mockProfileRepo) Update(p *entity.Profile) error     { return m.updateFn(p) }
func (m *mockProfileRepo) UpdateRole(id, role string) error   { return m.updateRoleFn(id, role) }
func (m *mockProfileRepo) List(limit, offset int) ([]*entity.Profile, error) {
	return m.listFn(limit, offset)
}
