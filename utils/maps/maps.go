package maps

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// PartialDocument is a struct view over a JSON document that carries more
// fields than the struct declares. The raw document travels with the struct
// so that an update written back to storage keeps every field the struct
// does not know about.
type PartialDocument interface {
	raw() map[string]interface{}
	setRaw(map[string]interface{})
	MarshalJSON() ([]byte, error)
}

// BaseDocument is embedded into every partial-document struct.
type BaseDocument struct {
	rawMap map[string]interface{}
}

func (doc *BaseDocument) raw() map[string]interface{} {
	return doc.rawMap
}

func (doc *BaseDocument) setRaw(raw map[string]interface{}) {
	doc.rawMap = raw
}

func (doc *BaseDocument) MarshalJSON() ([]byte, error) {
	return json.Marshal(doc.rawMap)
}

// FillFromMap populates the json-tagged fields of doc from the raw document
// and attaches the raw document to it.
func FillFromMap(doc PartialDocument, from map[string]interface{}) error {
	if err := eachTaggedField(doc, func(key string, field reflect.Value) error {
		rawValue, ok := from[key]
		if !ok || rawValue == nil {
			return nil
		}
		buf, err := json.Marshal(rawValue)
		if err != nil {
			return err
		}
		return json.Unmarshal(buf, field.Addr().Interface())
	}); err != nil {
		return err
	}
	doc.setRaw(from)
	return nil
}

// ApplyUpdates runs apply (which mutates doc through a captured typed
// pointer) and folds the modified fields back into the raw document.
func ApplyUpdates(doc PartialDocument, apply func()) error {
	if apply == nil {
		return nil
	}
	raw := doc.raw()
	if raw == nil {
		raw = map[string]interface{}{}
		doc.setRaw(raw)
	}
	apply()
	return eachTaggedField(doc, func(key string, field reflect.Value) error {
		buf, err := json.Marshal(field.Interface())
		if err != nil {
			return err
		}
		var value interface{}
		if err := json.Unmarshal(buf, &value); err != nil {
			return err
		}
		raw[key] = merge(raw[key], value)
		return nil
	})
}

// CopyValues fills to with the fields it shares with from and gives it a raw
// document built from those fields alone.
func CopyValues(from PartialDocument, to PartialDocument) error {
	if err := FillFromMap(to, from.raw()); err != nil {
		return err
	}
	raw := map[string]interface{}{}
	to.setRaw(raw)
	return ApplyUpdates(to, func() {})
}

// merge overlays an updated value onto the stored one. Objects merge key by
// key so unknown nested fields survive; everything else is replaced.
func merge(stored, updated interface{}) interface{} {
	storedMap, okStored := stored.(map[string]interface{})
	updatedMap, okUpdated := updated.(map[string]interface{})
	if !okStored || !okUpdated {
		return updated
	}
	for key, value := range updatedMap {
		storedMap[key] = merge(storedMap[key], value)
	}
	return storedMap
}

func eachTaggedField(doc PartialDocument, visit func(key string, field reflect.Value) error) error {
	value := reflect.ValueOf(doc)
	if value.Kind() != reflect.Ptr {
		return fmt.Errorf("%v is not a pointer", doc)
	}
	value = value.Elem()
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("%v is not a struct pointer", doc)
	}
	valueType := value.Type()
	for i := 0; i < value.NumField(); i++ {
		fieldInfo := valueType.Field(i)
		key, ok := fieldInfo.Tag.Lookup("json")
		if !ok {
			continue
		}
		if err := visit(key, value.Field(i)); err != nil {
			return fmt.Errorf("got error at field %s: %w", fieldInfo.Name, err)
		}
	}
	return nil
}
