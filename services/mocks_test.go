package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"healthcare_back_end_go/models"
	"healthcare_back_end_go/services"
)

// newTestContext builds a gin context around a JSON request for calling a
// handler directly, bypassing routing and middleware.
func newTestContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

// Func-field mocks for tests that need to force specific store behavior.
// Unset fields panic when reached, which is the point: the test declares
// exactly which calls it expects.

type mockUserStore struct {
	CreateUserFunc        func(ctx context.Context, u *models.User) error
	GetUserByIDFunc       func(ctx context.Context, id string) (*models.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	ListUsersFunc         func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc        func(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
	DeleteUserFunc        func(ctx context.Context, id string) error
}

var _ services.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) CreateUser(ctx context.Context, u *models.User) error {
	return m.CreateUserFunc(ctx, u)
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return m.GetUserByIDFunc(ctx, id)
}

func (m *mockUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.GetUserByUsernameFunc(ctx, username)
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.ListUsersFunc(ctx)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	return m.UpdateUserFunc(ctx, id, upd)
}

func (m *mockUserStore) DeleteUser(ctx context.Context, id string) error {
	return m.DeleteUserFunc(ctx, id)
}

type mockPatientStore struct {
	CreatePatientFunc         func(ctx context.Context, p *models.Patient) error
	GetPatientByIDFunc        func(ctx context.Context, id string) (*models.Patient, error)
	GetPatientForOwnerFunc    func(ctx context.Context, id, ownerID string) (*models.Patient, error)
	ListPatientsByOwnerFunc   func(ctx context.Context, ownerID string) ([]models.Patient, error)
	UpdatePatientFunc         func(ctx context.Context, id string, upd *models.PatientUpdateRequest) (*models.Patient, error)
	DeletePatientForOwnerFunc func(ctx context.Context, id, ownerID string) error
}

var _ services.PatientStore = (*mockPatientStore)(nil)

func (m *mockPatientStore) CreatePatient(ctx context.Context, p *models.Patient) error {
	return m.CreatePatientFunc(ctx, p)
}

func (m *mockPatientStore) GetPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	return m.GetPatientByIDFunc(ctx, id)
}

func (m *mockPatientStore) GetPatientForOwner(ctx context.Context, id, ownerID string) (*models.Patient, error) {
	return m.GetPatientForOwnerFunc(ctx, id, ownerID)
}

func (m *mockPatientStore) ListPatientsByOwner(ctx context.Context, ownerID string) ([]models.Patient, error) {
	return m.ListPatientsByOwnerFunc(ctx, ownerID)
}

func (m *mockPatientStore) UpdatePatient(ctx context.Context, id string, upd *models.PatientUpdateRequest) (*models.Patient, error) {
	return m.UpdatePatientFunc(ctx, id, upd)
}

func (m *mockPatientStore) DeletePatientForOwner(ctx context.Context, id, ownerID string) error {
	return m.DeletePatientForOwnerFunc(ctx, id, ownerID)
}

type mockDoctorStore struct {
	CreateDoctorFunc  func(ctx context.Context, d *models.Doctor) error
	GetDoctorByIDFunc func(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctorsFunc   func(ctx context.Context) ([]models.Doctor, error)
	UpdateDoctorFunc  func(ctx context.Context, id string, upd *models.DoctorUpdateRequest) (*models.Doctor, error)
	DeleteDoctorFunc  func(ctx context.Context, id string) error
}

var _ services.DoctorStore = (*mockDoctorStore)(nil)

func (m *mockDoctorStore) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	return m.CreateDoctorFunc(ctx, d)
}

func (m *mockDoctorStore) GetDoctorByID(ctx context.Context, id string) (*models.Doctor, error) {
	return m.GetDoctorByIDFunc(ctx, id)
}

func (m *mockDoctorStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return m.ListDoctorsFunc(ctx)
}

func (m *mockDoctorStore) UpdateDoctor(ctx context.Context, id string, upd *models.DoctorUpdateRequest) (*models.Doctor, error) {
	return m.UpdateDoctorFunc(ctx, id, upd)
}

func (m *mockDoctorStore) DeleteDoctor(ctx context.Context, id string) error {
	return m.DeleteDoctorFunc(ctx, id)
}

type mockMappingStore struct {
	CreateMappingFunc       func(ctx context.Context, patientID, doctorID string) (*models.PatientDoctorMapping, error)
	GetMappingByIDFunc      func(ctx context.Context, id string) (*models.PatientDoctorMapping, error)
	ListMappingsByOwnerFunc func(ctx context.Context, ownerID, patientID string) ([]models.PatientDoctorMapping, error)
	DeleteMappingFunc       func(ctx context.Context, id string) error
}

var _ services.MappingStore = (*mockMappingStore)(nil)

func (m *mockMappingStore) CreateMapping(ctx context.Context, patientID, doctorID string) (*models.PatientDoctorMapping, error) {
	return m.CreateMappingFunc(ctx, patientID, doctorID)
}

func (m *mockMappingStore) GetMappingByID(ctx context.Context, id string) (*models.PatientDoctorMapping, error) {
	return m.GetMappingByIDFunc(ctx, id)
}

func (m *mockMappingStore) ListMappingsByOwner(ctx context.Context, ownerID, patientID string) ([]models.PatientDoctorMapping, error) {
	return m.ListMappingsByOwnerFunc(ctx, ownerID, patientID)
}

func (m *mockMappingStore) DeleteMapping(ctx context.Context, id string) error {
	return m.DeleteMappingFunc(ctx, id)
}
