package procurement

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umitgh/procurement-system/internal/domain/identity"
	"github.com/umitgh/procurement-system/internal/domain/partner"
	"github.com/umitgh/procurement-system/internal/domain/shared"
	"go.uber.org/zap"
)

type directoryFixture struct {
	users     *MockUserRepository
	suppliers *MockSupplierRepository
	companies *MockCompanyRepository
	service   *DirectoryService
}

func newDirectoryFixture() *directoryFixture {
	f := &directoryFixture{
		users:     new(MockUserRepository),
		suppliers: new(MockSupplierRepository),
		companies: new(MockCompanyRepository),
	}
	f.service = NewDirectoryService(f.users, f.suppliers, f.companies, zap.NewNop())
	return f
}

var adminActor = Actor{ID: uuid.New(), Role: identity.RoleAdmin}

func TestDirectoryService_CreateUser(t *testing.T) {
	f := newDirectoryFixture()
	manager := newUser("mgr", identity.RoleManager, 50000, nil)
	limit := decimal.NewFromInt(1000)
	f.users.On("ExistsByEmail", mockCtx, "alice@example.com").Return(false, nil)
	f.users.On("FindByID", mockCtx, manager.ID).Return(manager, nil)
	f.users.On("Save", mockCtx, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := f.service.CreateUser(context.Background(), adminActor, CreateUserRequest{
		Email:         "alice@example.com",
		Name:          "Alice",
		Password:      "correct-horse",
		Role:          "USER",
		ApprovalLimit: &limit,
		ManagerID:     &manager.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, "USER", resp.Role)
	assert.True(t, limit.Equal(resp.ApprovalLimit))
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, manager.ID, *resp.ManagerID)
	assert.True(t, resp.IsActive)

	saved := f.users.Calls[2].Arguments.Get(1).(*identity.User)
	assert.True(t, saved.VerifyPassword("correct-horse"))
}

func TestDirectoryService_CreateUser_Guards(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		f := newDirectoryFixture()
		_, err := f.service.CreateUser(context.Background(), Actor{ID: uuid.New(), Role: identity.RoleManager}, CreateUserRequest{})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newDirectoryFixture()
		f.users.On("ExistsByEmail", mockCtx, "bob@example.com").Return(true, nil)
		_, err := f.service.CreateUser(context.Background(), adminActor, CreateUserRequest{Email: "bob@example.com", Name: "Bob", Password: "long-enough"})
		assert.ErrorIs(t, err, identity.ErrEmailExists)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("unknown manager", func(t *testing.T) {
		f := newDirectoryFixture()
		missing := uuid.New()
		f.users.On("ExistsByEmail", mockCtx, mock.Anything).Return(false, nil)
		f.users.On("FindByID", mockCtx, missing).Return(nil, identity.ErrUserNotFound)
		_, err := f.service.CreateUser(context.Background(), adminActor, CreateUserRequest{
			Email: "eve@example.com", Name: "Eve", Password: "long-enough", ManagerID: &missing,
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestDirectoryService_GetUser_SelfOrAdmin(t *testing.T) {
	f := newDirectoryFixture()
	user := newUser("alice", identity.RoleUser, 0, nil)
	f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)

	resp, err := f.service.GetUser(context.Background(), Actor{ID: user.ID, Role: identity.RoleUser}, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Name)

	_, err = f.service.GetUser(context.Background(), Actor{ID: uuid.New(), Role: identity.RoleManager}, user.ID)
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestDirectoryService_UpdateUser(t *testing.T) {
	f := newDirectoryFixture()
	boss := newUser("boss", identity.RoleManager, 90000, nil)
	user := newUser("alice", identity.RoleUser, 100, boss)
	f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)
	f.users.On("Save", mockCtx, user).Return(nil)

	role := "MANAGER"
	limit := decimal.NewFromInt(20000)
	inactive := false
	resp, err := f.service.UpdateUser(context.Background(), adminActor, user.ID, UpdateUserRequest{
		Role:          &role,
		ApprovalLimit: &limit,
		ClearManager:  true,
		IsActive:      &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "MANAGER", resp.Role)
	assert.True(t, limit.Equal(resp.ApprovalLimit))
	assert.Nil(t, resp.ManagerID)
	assert.False(t, resp.IsActive)
}

func TestDirectoryService_UpdateUser_RejectsSelfManagement(t *testing.T) {
	f := newDirectoryFixture()
	user := newUser("alice", identity.RoleUser, 100, nil)
	f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)

	_, err := f.service.UpdateUser(context.Background(), adminActor, user.ID, UpdateUserRequest{ManagerID: &user.ID})

	assert.Equal(t, "INVALID_MANAGER", shared.CodeOf(err))
}

func TestDirectoryService_DeactivateUser(t *testing.T) {
	f := newDirectoryFixture()
	user := newUser("alice", identity.RoleUser, 100, nil)
	f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)
	f.users.On("Save", mockCtx, user).Return(nil)

	require.NoError(t, f.service.DeactivateUser(context.Background(), adminActor, user.ID))
	assert.False(t, user.IsActive())
}

type recordingRevoker struct {
	revoked []uuid.UUID
	err     error
}

func (r *recordingRevoker) RevokeUser(_ context.Context, userID uuid.UUID) error {
	r.revoked = append(r.revoked, userID)
	return r.err
}

func TestDirectoryService_DeactivateUser_RevokesSessions(t *testing.T) {
	t.Run("revokes after save", func(t *testing.T) {
		f := newDirectoryFixture()
		revoker := &recordingRevoker{}
		f.service.SetSessionRevoker(revoker)
		user := newUser("bob", identity.RoleManager, 100, nil)
		f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)
		f.users.On("Save", mockCtx, user).Return(nil)

		require.NoError(t, f.service.DeactivateUser(context.Background(), adminActor, user.ID))
		assert.Equal(t, []uuid.UUID{user.ID}, revoker.revoked)
	})

	t.Run("revocation failure does not fail the deactivation", func(t *testing.T) {
		f := newDirectoryFixture()
		revoker := &recordingRevoker{err: errors.New("redis down")}
		f.service.SetSessionRevoker(revoker)
		user := newUser("carol", identity.RoleUser, 0, nil)
		f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)
		f.users.On("Save", mockCtx, user).Return(nil)

		assert.NoError(t, f.service.DeactivateUser(context.Background(), adminActor, user.ID))
	})

	t.Run("failed save revokes nothing", func(t *testing.T) {
		f := newDirectoryFixture()
		revoker := &recordingRevoker{}
		f.service.SetSessionRevoker(revoker)
		user := newUser("dave", identity.RoleUser, 0, nil)
		f.users.On("FindByID", mockCtx, user.ID).Return(user, nil)
		f.users.On("Save", mockCtx, user).Return(errors.New("db down"))

		assert.Error(t, f.service.DeactivateUser(context.Background(), adminActor, user.ID))
		assert.Empty(t, revoker.revoked)
	})
}

func TestDirectoryService_ListUsers(t *testing.T) {
	f := newDirectoryFixture()
	f.users.On("FindAll", mockCtx, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Page == 2 && filter.PageSize == 1 && filter.OrderBy == "name" && filter.Search == "al"
	})).Return([]*identity.User{newUser("alice", identity.RoleUser, 0, nil)}, int64(3), nil)

	page, err := f.service.ListUsers(context.Background(), adminActor, DirectoryListFilter{Page: 2, PageSize: 1, Search: " al "})

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 1)
}

func TestDirectoryService_Suppliers(t *testing.T) {
	f := newDirectoryFixture()
	f.suppliers.On("ExistsByEmail", mockCtx, "orders@globex.example.com").Return(false, nil)
	f.suppliers.On("Save", mockCtx, mock.AnythingOfType("*partner.Supplier")).Return(nil)

	created, err := f.service.CreateSupplier(context.Background(), adminActor, CreateSupplierRequest{
		Name:          "Globex",
		Email:         "orders@globex.example.com",
		ContactPerson: "Hank",
		TaxID:         " 12-345 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "12-345", created.TaxID)
	assert.Equal(t, "Hank", created.ContactPerson)
	assert.True(t, created.IsActive)

	supplier := f.suppliers.Calls[1].Arguments.Get(1).(*partner.Supplier)
	f.suppliers.On("FindByID", mockCtx, supplier.ID).Return(supplier, nil)

	phone := "555-0100"
	inactive := false
	updated, err := f.service.UpdateSupplier(context.Background(), adminActor, supplier.ID, UpdateSupplierRequest{Phone: &phone, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "Hank", updated.ContactPerson)
	assert.False(t, updated.IsActive)
}

func TestDirectoryService_CreateSupplier_DuplicateEmail(t *testing.T) {
	f := newDirectoryFixture()
	f.suppliers.On("ExistsByEmail", mockCtx, mock.Anything).Return(true, nil)

	_, err := f.service.CreateSupplier(context.Background(), adminActor, CreateSupplierRequest{Name: "Globex", Email: "orders@globex.example.com"})

	assert.ErrorIs(t, err, partner.ErrSupplierEmailExists)
}

func TestDirectoryService_Companies(t *testing.T) {
	f := newDirectoryFixture()
	f.companies.On("Save", mockCtx, mock.AnythingOfType("*partner.Company")).Return(nil)

	_, err := f.service.CreateCompany(context.Background(), Actor{ID: uuid.New(), Role: identity.RoleUser}, CreateCompanyRequest{Name: "Acme"})
	assert.ErrorIs(t, err, shared.ErrForbidden)

	created, err := f.service.CreateCompany(context.Background(), adminActor, CreateCompanyRequest{Name: "Acme", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", created.Address)

	f.companies.On("FindAll", mockCtx, mock.Anything).Return([]*partner.Company{newCompany(t)}, int64(1), nil)
	page, err := f.service.ListCompanies(context.Background(), DirectoryListFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
