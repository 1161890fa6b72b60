package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

type fakeOfficesAPI struct {
	listCalls int
	offices   []models.Office
}

func (f *fakeOfficesAPI) ListOffices(ctx context.Context) ([]models.Office, error) {
	f.listCalls++
	return f.offices, nil
}

func (f *fakeOfficesAPI) GetOffice(ctx context.Context, id int64) (models.Office, error) {
	return models.Office{ID: id}, nil
}

func (f *fakeOfficesAPI) CreateOffice(ctx context.Context, req models.CreateOfficeRequest) (models.Office, error) {
	return models.Office{ID: 1, Name: req.Name}, nil
}

func (f *fakeOfficesAPI) UpdateOffice(ctx context.Context, id int64, req models.UpdateOfficeRequest) (models.Office, error) {
	return models.Office{ID: id}, nil
}

func (f *fakeOfficesAPI) DeleteOffice(ctx context.Context, id int64) error {
	return nil
}

type fakeCategoriesAPI struct {
	listCalls int
}

func (f *fakeCategoriesAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.listCalls++
	return []models.Category{{ID: 1, Name: "Electronics"}}, nil
}

func (f *fakeCategoriesAPI) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	return models.Category{ID: 2, Name: req.Name}, nil
}

func (f *fakeCategoriesAPI) UpdateCategory(ctx context.Context, id int64, req models.UpdateCategoryRequest) (models.Category, error) {
	return models.Category{ID: id, Name: req.Name}, nil
}

func (f *fakeCategoriesAPI) DeleteCategory(ctx context.Context, id int64) error {
	return nil
}

type fakeUsersAPI struct {
	listCalls int
	disabled  []int64
}

func (f *fakeUsersAPI) ListUsers(ctx context.Context) ([]models.User, error) {
	f.listCalls++
	return []models.User{{ID: 1, Username: "admin", Status: models.UserStatusActive}}, nil
}

func (f *fakeUsersAPI) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return models.User{ID: 2, Username: req.Username, Status: models.UserStatusActive}, nil
}

func (f *fakeUsersAPI) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	return models.User{ID: id, Name: req.Name, Surname: req.Surname}, nil
}

func (f *fakeUsersAPI) DeleteUser(ctx context.Context, id int64) error {
	f.disabled = append(f.disabled, id)
	return nil
}

type fakeReportsAPI struct {
	generalCalls int
	publicCalls  int
}

func (f *fakeReportsAPI) GeneralReport(ctx context.Context, params models.ReportParams) (models.Report, error) {
	f.generalCalls++
	return models.Report{OK: true, Status: 200}, nil
}

func (f *fakeReportsAPI) PublicReport(ctx context.Context, period string) (models.PublicReport, error) {
	f.publicCalls++
	return models.PublicReport{OK: true, Data: models.PublicReportData{Found: 12, Claimed: 5}}, nil
}

// An office mutation must leave unrelated cached lists alone while a shared
// cache serves every service.
func TestServices_InvalidationIsScopedPerResource(t *testing.T) {
	cache := query.NewCache()
	offices := &fakeOfficesAPI{}
	categories := &fakeCategoriesAPI{}
	officeSvc := NewOfficeService(offices, cache)
	categorySvc := NewCategoryService(categories, cache)
	ctx := context.Background()

	_, err := officeSvc.List(ctx)
	require.NoError(t, err)
	_, err = categorySvc.List(ctx)
	require.NoError(t, err)

	_, err = officeSvc.Create(ctx, models.CreateOfficeRequest{Name: "HQ"})
	require.NoError(t, err)

	_, err = officeSvc.List(ctx)
	require.NoError(t, err)
	_, err = categorySvc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, offices.listCalls)
	assert.Equal(t, 1, categories.listCalls, "office mutations must not touch the category cache")
}

func TestCategoryService_MutationsInvalidateList(t *testing.T) {
	cache := query.NewCache()
	api := &fakeCategoriesAPI{}
	svc := NewCategoryService(api, cache)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, "Documents")
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestUserService_DisableInvalidatesList(t *testing.T) {
	cache := query.NewCache()
	api := &fakeUsersAPI{}
	svc := NewUserService(api, cache)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Disable(ctx, 1))
	assert.Equal(t, []int64{1}, api.disabled)

	_, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestReportService_CachedPerScopeAndPeriod(t *testing.T) {
	cache := query.NewCache()
	api := &fakeReportsAPI{}
	svc := NewReportService(api, cache)
	ctx := context.Background()

	_, err := svc.General(ctx, models.ReportParams{Scope: "items", Period: "week"})
	require.NoError(t, err)
	_, err = svc.General(ctx, models.ReportParams{Scope: "items", Period: "week"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.generalCalls)

	_, err = svc.General(ctx, models.ReportParams{Scope: "items", Period: "month"})
	require.NoError(t, err)
	assert.Equal(t, 2, api.generalCalls, "a different period is a different query")
}

func TestReportService_Public(t *testing.T) {
	svc := NewReportService(&fakeReportsAPI{}, query.NewCache())

	rep, err := svc.Public(context.Background(), "month")
	require.NoError(t, err)
	assert.Equal(t, 12, rep.Data.Found)
	assert.Equal(t, 5, rep.Data.Claimed)
}
