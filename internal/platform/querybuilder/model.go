package querybuilder

import (
	"errors"
	"reflect"
	"strings"
)

// InsertModel builds a single-row insert from the `db` tags of model.
// Untagged and "-" fields are skipped.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := taggedColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

func taggedColumns(model any) ([]string, []any, error) {
	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil, nil, errors.New("insert model: nil")
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, errors.New("insert model: not a struct")
	}

	var (
		cols []string
		vals []any
	)
	for _, field := range reflect.VisibleFields(v.Type()) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if name = strings.TrimSpace(name); name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.FieldByIndex(field.Index).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, errors.New("insert model: no db columns")
	}
	return cols, vals, nil
}
