package schema

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/clinicore/admin-api/internal/store"
	apperrors "github.com/clinicore/admin-api/pkg/errors"
)

var validate = validator.New()

// Form is the data-entry dialog behind add and edit. It seeds its draft
// from the provided initial data (an empty record in add mode), mutates
// the draft per Set call and emits the complete draft on Submit. Cancel
// discards the draft without emitting.
type Form struct {
	entity Entity
	draft  store.Record
}

func NewForm(entity Entity, initial store.Record) *Form {
	draft := make(store.Record, len(initial))
	for k, v := range initial {
		draft[k] = v
	}
	return &Form{entity: entity, draft: draft}
}

// Set updates one field of the draft. Unknown fields are rejected so a
// schema typo surfaces immediately instead of persisting silently.
func (f *Form) Set(name string, value interface{}) error {
	if _, ok := f.entity.field(name); !ok && name != "id" {
		return apperrors.NewBadRequest(fmt.Sprintf("unknown field %q", name), nil)
	}
	f.draft[name] = value
	return nil
}

// Submit validates the draft against the field kinds and returns the
// complete draft object, full form state rather than a delta.
func (f *Form) Submit() (store.Record, error) {
	for _, field := range f.entity.Fields {
		value, present := f.draft[field.Name]
		if !present {
			continue
		}
		if err := validateField(field, value); err != nil {
			return nil, err
		}
		if field.Kind == KindNumber {
			f.draft[field.Name] = coerceNumber(value)
		}
	}

	out := make(store.Record, len(f.draft))
	for k, v := range f.draft {
		out[k] = v
	}
	return out, nil
}

// Cancel discards the draft.
func (f *Form) Cancel() {
	f.draft = store.Record{}
}

func validateField(field Field, value interface{}) error {
	switch field.Kind {
	case KindSelect:
		s, _ := value.(string)
		if s == "" {
			return apperrors.NewBadRequest(fmt.Sprintf("%s must be selected", field.Label), nil)
		}
		for _, opt := range field.Options {
			if s == opt {
				return nil
			}
		}
		return apperrors.NewBadRequest(fmt.Sprintf("%s has no option %q", field.Label, s), nil)
	case KindEmail:
		s, _ := value.(string)
		if err := validate.Var(s, "omitempty,email"); err != nil {
			return apperrors.NewBadRequest(fmt.Sprintf("%s is not a valid email", field.Label), err)
		}
	case KindNumber:
		if !isNumeric(value) {
			return apperrors.NewBadRequest(fmt.Sprintf("%s must be a number", field.Label), nil)
		}
	}
	return nil
}

func isNumeric(value interface{}) bool {
	switch v := value.(type) {
	case int, int64, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	default:
		return false
	}
}

func coerceNumber(value interface{}) interface{} {
	if s, ok := value.(string); ok {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	}
	return value
}
