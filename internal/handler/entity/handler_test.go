package entity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/admin-api/internal/adapter"
	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/schema"
	"github.com/clinicore/admin-api/internal/store"
	"github.com/clinicore/admin-api/internal/store/file"
)

type envelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func newPatientRouter(t *testing.T) (*gin.Engine, *adapter.Adapter[model.Patient]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	drv := file.New(t.TempDir(), model.Collections())
	require.NoError(t, drv.Open(context.Background()))

	a := adapter.New[model.Patient](drv, model.CollectionPatients, nil)
	require.NoError(t, a.Load(context.Background()))

	engine := gin.New()
	h := NewHandler(model.CollectionPatients, a, schema.Entities()[model.CollectionPatients])
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine, a
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func createPatient(t *testing.T, engine *gin.Engine, fields map[string]interface{}) int64 {
	t.Helper()
	w, resp := doRequest(t, engine, http.MethodPost, "/api/v1/patients", fields)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(resp.Data["id"].(float64))
}

func TestCreateAndList(t *testing.T) {
	engine, _ := newPatientRouter(t)

	id := createPatient(t, engine, map[string]interface{}{
		"name": "John Doe", "age": 35, "gender": "Male", "email": "john.doe@example.com",
	})
	assert.EqualValues(t, 1, id)

	w, resp := doRequest(t, engine, http.MethodGet, "/api/v1/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := resp.Data["records"].([]interface{})
	require.Len(t, records, 1)
	assert.EqualValues(t, 1, resp.Data["total"])
	assert.EqualValues(t, 1, resp.Data["total_pages"])
	assert.Equal(t, false, resp.Data["loading"])
	assert.Equal(t, "", resp.Data["error"])
}

func TestListSearchAndPagination(t *testing.T) {
	engine, _ := newPatientRouter(t)

	for i := 1; i <= 12; i++ {
		createPatient(t, engine, map[string]interface{}{"name": fmt.Sprintf("Patient %02d", i)})
	}

	w, resp := doRequest(t, engine, http.MethodGet, "/api/v1/patients?page=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, resp.Data["total_pages"])
	assert.Len(t, resp.Data["records"].([]interface{}), 2)

	w, resp = doRequest(t, engine, http.MethodGet, "/api/v1/patients?search=patient+01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, resp.Data["total"])
}

func TestUpdateSendsFullFormState(t *testing.T) {
	engine, a := newPatientRouter(t)

	id := createPatient(t, engine, map[string]interface{}{
		"name": "John Doe", "age": 35, "email": "john.doe@example.com",
	})

	// Edits re-submit the full edited object, not just the delta.
	w, _ := doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/patients/%d", id), map[string]interface{}{
		"name": "John Doe", "age": 36, "email": "john.doe@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	st := a.State()
	require.Len(t, st.Records, 1)
	assert.Equal(t, 36, st.Records[0].Age)
	assert.Equal(t, "John Doe", st.Records[0].Name)
}

func TestUpdateMissingRecord(t *testing.T) {
	engine, _ := newPatientRouter(t)

	w, _ := doRequest(t, engine, http.MethodPut, "/api/v1/patients/999", map[string]interface{}{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	engine, a := newPatientRouter(t)
	id := createPatient(t, engine, map[string]interface{}{"name": "John Doe"})

	w, _ := doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/patients/%d", id), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, a.State().Records, 1)

	w, _ = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/patients/%d?confirm=true", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, a.State().Records)

	// Deleting an absent id is still a success.
	w, _ = doRequest(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/patients/%d?confirm=true", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	engine, _ := newPatientRouter(t)

	w, _ := doRequest(t, engine, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"name": "John Doe", "email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, engine, http.MethodPost, "/api/v1/patients", map[string]interface{}{
		"favourite_color": "blue",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchemaEndpoint(t *testing.T) {
	engine, _ := newPatientRouter(t)

	w, resp := doRequest(t, engine, http.MethodGet, "/api/v1/patients/schema", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Patients", resp.Data["title"])
	assert.NotEmpty(t, resp.Data["fields"])
}

func TestExpandResolvesReferences(t *testing.T) {
	gin.SetMode(gin.TestMode)

	drv := file.New(t.TempDir(), model.Collections())
	require.NoError(t, drv.Open(context.Background()))
	ctx := context.Background()

	patientID, err := drv.Insert(ctx, model.CollectionPatients, store.Record{"name": "John Doe"})
	require.NoError(t, err)
	_, err = drv.Insert(ctx, model.CollectionAppointments, store.Record{"patient_id": patientID, "date": "2024-03-22"})
	require.NoError(t, err)

	a := adapter.New[model.Appointment](drv, model.CollectionAppointments, nil)
	require.NoError(t, a.Load(ctx))

	engine := gin.New()
	h := NewHandler(model.CollectionAppointments, a, schema.Entities()[model.CollectionAppointments]).
		WithExpander(func(c *gin.Context, rec store.Record) store.Record {
			rec["patient_name"] = "John Doe"
			return rec
		})
	h.RegisterRoutes(engine.Group("/api/v1"))

	w, resp := doRequest(t, engine, http.MethodGet, "/api/v1/appointments?expand=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := resp.Data["records"].([]interface{})
	require.Len(t, records, 1)
	assert.Equal(t, "John Doe", records[0].(map[string]interface{})["patient_name"])
}
