package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"healthcare_back_end_go/models"
	"healthcare_back_end_go/routes"
	"healthcare_back_end_go/services"
	"healthcare_back_end_go/storage"
)

const testSecret = "test-secret"

// fakeStore is an in-memory stand-in for storage.Store with the same
// semantics the handlers rely on: unique usernames and licenses, a unique
// (patient, doctor) pair, and owner-scoped lookups.
type fakeStore struct {
	users    map[string]models.User
	patients map[string]models.Patient
	doctors  map[string]models.Doctor
	mappings map[string]models.PatientDoctorMapping
}

var (
	_ services.UserStore    = (*fakeStore)(nil)
	_ services.PatientStore = (*fakeStore)(nil)
	_ services.DoctorStore  = (*fakeStore)(nil)
	_ services.MappingStore = (*fakeStore)(nil)
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    map[string]models.User{},
		patients: map[string]models.Patient{},
		doctors:  map[string]models.Doctor{},
		mappings: map[string]models.PatientDoctorMapping{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, u *models.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return storage.ErrDuplicate
		}
	}
	u.ID = uuid.New().String()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.users[u.ID] = *u
	return nil
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) ListUsers(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeStore) UpdateUser(_ context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if upd.Username != nil {
		for otherID, other := range f.users {
			if otherID != id && other.Username == *upd.Username {
				return nil, storage.ErrDuplicate
			}
		}
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.HashedPassword != nil {
		u.HashedPassword = *upd.HashedPassword
	}
	u.UpdatedAt = time.Now().UTC()
	f.users[id] = u
	return &u, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeStore) CreatePatient(_ context.Context, p *models.Patient) error {
	p.ID = uuid.New().String()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.patients[p.ID] = *p
	return nil
}

func (f *fakeStore) GetPatientByID(_ context.Context, id string) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) GetPatientForOwner(_ context.Context, id, ownerID string) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok || p.UserID != ownerID {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ListPatientsByOwner(_ context.Context, ownerID string) ([]models.Patient, error) {
	patients := []models.Patient{}
	for _, p := range f.patients {
		if p.UserID == ownerID {
			patients = append(patients, p)
		}
	}
	return patients, nil
}

func (f *fakeStore) UpdatePatient(_ context.Context, id string, upd *models.PatientUpdateRequest) (*models.Patient, error) {
	p, ok := f.patients[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.Age != nil {
		p.Age = *upd.Age
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.PhoneNumber != nil {
		p.PhoneNumber = *upd.PhoneNumber
	}
	p.UpdatedAt = time.Now().UTC()
	f.patients[id] = p
	return &p, nil
}

func (f *fakeStore) DeletePatientForOwner(_ context.Context, id, ownerID string) error {
	p, ok := f.patients[id]
	if !ok || p.UserID != ownerID {
		return storage.ErrNotFound
	}
	delete(f.patients, id)
	return nil
}

func (f *fakeStore) CreateDoctor(_ context.Context, d *models.Doctor) error {
	for _, existing := range f.doctors {
		if existing.MedicalLicense == d.MedicalLicense {
			return storage.ErrDuplicate
		}
	}
	d.ID = uuid.New().String()
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	f.doctors[d.ID] = *d
	return nil
}

func (f *fakeStore) GetDoctorByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &d, nil
}

func (f *fakeStore) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	for _, d := range f.doctors {
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (f *fakeStore) UpdateDoctor(_ context.Context, id string, upd *models.DoctorUpdateRequest) (*models.Doctor, error) {
	d, ok := f.doctors[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if upd.MedicalLicense != nil {
		for otherID, other := range f.doctors {
			if otherID != id && other.MedicalLicense == *upd.MedicalLicense {
				return nil, storage.ErrDuplicate
			}
		}
		d.MedicalLicense = *upd.MedicalLicense
	}
	if upd.FirstName != nil {
		d.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		d.LastName = *upd.LastName
	}
	if upd.Specialty != nil {
		d.Specialty = *upd.Specialty
	}
	if upd.ExperienceYears != nil {
		d.ExperienceYears = *upd.ExperienceYears
	}
	d.UpdatedAt = time.Now().UTC()
	f.doctors[id] = d
	return &d, nil
}

func (f *fakeStore) DeleteDoctor(_ context.Context, id string) error {
	if _, ok := f.doctors[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.doctors, id)
	return nil
}

func (f *fakeStore) CreateMapping(_ context.Context, patientID, doctorID string) (*models.PatientDoctorMapping, error) {
	for _, m := range f.mappings {
		if m.PatientID == patientID && m.DoctorID == doctorID {
			return nil, storage.ErrDuplicate
		}
	}
	m := models.PatientDoctorMapping{
		ID:           uuid.New().String(),
		PatientID:    patientID,
		DoctorID:     doctorID,
		AssignedDate: time.Now().UTC(),
	}
	f.mappings[m.ID] = m
	return &m, nil
}

func (f *fakeStore) GetMappingByID(_ context.Context, id string) (*models.PatientDoctorMapping, error) {
	m, ok := f.mappings[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &m, nil
}

func (f *fakeStore) ListMappingsByOwner(_ context.Context, ownerID, patientID string) ([]models.PatientDoctorMapping, error) {
	mappings := []models.PatientDoctorMapping{}
	for _, m := range f.mappings {
		p, ok := f.patients[m.PatientID]
		if !ok || p.UserID != ownerID {
			continue
		}
		if patientID != "" && m.PatientID != patientID {
			continue
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

func (f *fakeStore) DeleteMapping(_ context.Context, id string) error {
	if _, ok := f.mappings[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.mappings, id)
	return nil
}

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupHealthRoutes(r)
	routes.SetupUserRoutes(r, store, testSecret)
	routes.SetupPatientRoutes(r, store, store, testSecret)
	routes.SetupDoctorRoutes(r, store, store, testSecret)
	routes.SetupMappingRoutes(r, store, store, store, store, testSecret)
	return r
}

func performRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	return list
}

// registerAndLogin creates a user through the API and returns its id and a
// valid bearer token.
func registerAndLogin(t *testing.T, r http.Handler, username string) (string, string) {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/v1/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(string)

	w = performRequest(t, r, http.MethodPost, "/api/v1/login", "", gin.H{
		"username": username,
		"password": "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decodeBody(t, w)["token"].(string)
	return id, token
}

// createPatient persists a patient through the API for the given token.
func createPatient(t *testing.T, r http.Handler, token, firstName string) string {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/v1/patients", token, gin.H{
		"first_name": firstName,
		"last_name":  "Smith",
		"age":        34,
		"gender":     "female",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}

// createDoctor persists a doctor through the API for the given token.
func createDoctor(t *testing.T, r http.Handler, token, license string) string {
	t.Helper()
	w := performRequest(t, r, http.MethodPost, "/api/v1/doctors", token, gin.H{
		"first_name":      "Greg",
		"last_name":       "House",
		"specialty":       "diagnostics",
		"medical_license": license,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["id"].(string)
}
