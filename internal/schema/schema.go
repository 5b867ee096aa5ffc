// Package schema holds the declarative field and column definitions
// driving the generic entity surfaces and their data-entry forms.
package schema

// Kind is the input kind of a form field.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
	KindDate   Kind = "date"
	KindEmail  Kind = "email"
	KindTel    Kind = "tel"
)

// Field describes one form input: name, label, input kind and, for
// selects, the closed option list.
type Field struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Kind    Kind     `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// Column describes one table column of the list view.
type Column struct {
	Header   string `json:"header"`
	Accessor string `json:"accessor"`
}

// Entity binds a collection to its fields and columns.
type Entity struct {
	Title   string   `json:"title"`
	Fields  []Field  `json:"fields"`
	Columns []Column `json:"columns"`
}

func (e Entity) field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
