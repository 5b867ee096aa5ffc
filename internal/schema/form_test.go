package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/admin-api/internal/model"
	"github.com/clinicore/admin-api/internal/store"
)

func patientEntity(t *testing.T) Entity {
	t.Helper()
	e, ok := Entities()[model.CollectionPatients]
	require.True(t, ok)
	return e
}

func TestFormSeedsFromInitialData(t *testing.T) {
	form := NewForm(patientEntity(t), store.Record{"name": "John Doe", "age": 35})

	out, err := form.Submit()
	require.NoError(t, err)
	assert.Equal(t, "John Doe", out["name"])
	assert.EqualValues(t, 35, out["age"])
}

func TestFormSubmitEmitsFullDraft(t *testing.T) {
	// Edit mode: the draft starts as the existing record and the submit
	// carries every field, not just the ones that changed.
	form := NewForm(patientEntity(t), store.Record{
		"name": "John Doe", "age": 35, "gender": "Male", "email": "john@x.com",
	})
	require.NoError(t, form.Set("email", "doe@x.com"))

	out, err := form.Submit()
	require.NoError(t, err)
	assert.Equal(t, "doe@x.com", out["email"])
	assert.Equal(t, "John Doe", out["name"])
	assert.Equal(t, "Male", out["gender"])
	assert.EqualValues(t, 35, out["age"])
}

func TestFormRejectsUnknownField(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	assert.Error(t, form.Set("favourite_color", "blue"))
}

func TestFormRejectsEmptySelectValue(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	require.NoError(t, form.Set("gender", ""))

	_, err := form.Submit()
	assert.Error(t, err)
}

func TestFormRejectsUnknownSelectOption(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	require.NoError(t, form.Set("gender", "Unknown"))

	_, err := form.Submit()
	assert.Error(t, err)
}

func TestFormRejectsInvalidEmail(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	require.NoError(t, form.Set("email", "not-an-email"))

	_, err := form.Submit()
	assert.Error(t, err)
}

func TestFormAllowsEmptyEmail(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	require.NoError(t, form.Set("email", ""))

	_, err := form.Submit()
	assert.NoError(t, err)
}

func TestFormCoercesNumericStrings(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	require.NoError(t, form.Set("age", "35"))

	out, err := form.Submit()
	require.NoError(t, err)
	assert.EqualValues(t, 35.0, out["age"])
}

func TestFormRejectsNonNumericNumber(t *testing.T) {
	form := NewForm(patientEntity(t), nil)
	require.NoError(t, form.Set("age", "thirty-five"))

	_, err := form.Submit()
	assert.Error(t, err)
}

func TestFormCancelDiscardsDraft(t *testing.T) {
	form := NewForm(patientEntity(t), store.Record{"name": "John Doe"})
	form.Cancel()

	out, err := form.Submit()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEverySchemaHasFieldsAndColumns(t *testing.T) {
	entities := Entities()
	for _, collection := range model.Collections() {
		e, ok := entities[collection]
		require.True(t, ok, collection)
		assert.NotEmpty(t, e.Fields, collection)
		assert.NotEmpty(t, e.Columns, collection)
	}
}
