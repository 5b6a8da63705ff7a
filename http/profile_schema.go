package http

import (
	"reflect"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"mortgage-power/domain"
)

var fieldType = reflect.TypeOf(domain.Field(""))

// profileSchema derives a JSON schema from RawProfile: flags must be booleans,
// choice fields strings, and numeric fields strings, numbers or null. Values
// are not range-checked here; the normalizer handles that.
func profileSchema() map[string]any {
	properties := map[string]any{}
	t := reflect.TypeOf(domain.RawProfile{})
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		switch {
		case f.Type == fieldType:
			properties[name] = map[string]any{"type": []string{"string", "number", "null"}}
		case f.Type.Kind() == reflect.Bool:
			properties[name] = map[string]any{"type": "boolean"}
		case f.Type.Kind() == reflect.String:
			properties[name] = map[string]any{"type": []string{"string", "null"}}
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

func compileProfileSchema() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(profileSchema()))
}
