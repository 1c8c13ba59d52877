package dieticians

import (
	"reflect"
	"sort"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/mohae/deepcopy"

	"github.com/tidepool-org/dieticians/errors"
)

// Patch is a sparse update of a dietician keyed by attribute name. Attributes which are
// not present are left unchanged.
type Patch map[string]interface{}

type patchableField struct {
	key string
	set func(d *Dietician, value string)
}

// The id, email and password are never patched.
var patchableFields = []patchableField{
	{key: "firstName", set: func(d *Dietician, v string) { d.FirstName = v }},
	{key: "lastName", set: func(d *Dietician, v string) { d.LastName = v }},
	{key: "contactNumber", set: func(d *Dietician, v string) { d.ContactNumber = v }},
	{key: "dateOfBirth", set: func(d *Dietician, v string) { d.DateOfBirth = v }},
	{key: "hospitalName", set: func(d *Dietician, v string) { d.HospitalName = v }},
	{key: "hospitalStreet", set: func(d *Dietician, v string) { d.HospitalStreet = v }},
	{key: "hospitalCity", set: func(d *Dietician, v string) { d.HospitalCity = v }},
}

func PatchableKeys() []string {
	keys := make([]string, 0, len(patchableFields))
	for _, f := range patchableFields {
		keys = append(keys, f.key)
	}
	return keys
}

// IgnoredKeys returns the sorted keys of the patch which do not match a patchable attribute
func (p Patch) IgnoredKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}

	ignored := mapset.NewThreadUnsafeSet(keys...).Difference(mapset.NewThreadUnsafeSet(PatchableKeys()...)).ToSlice()
	sort.Strings(ignored)
	return ignored
}

// ApplyPatch returns a copy of the dietician with the patch applied. Scalar values are
// converted to text and null clears the attribute. The original dietician is not modified.
func ApplyPatch(original *Dietician, patch Patch) (*Dietician, error) {
	updated := deepcopy.Copy(*original).(Dietician)

	validationErr := errors.NewValidationError()
	for _, field := range patchableFields {
		raw, ok := patch[field.key]
		if !ok {
			continue
		}

		value, err := decodeText(raw)
		if err != nil {
			validationErr.Add(field.key, "must be a string")
			continue
		}
		field.set(&updated, value)
	}

	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &updated, nil
}

// decodeText converts a scalar patch value to its text form. Booleans become "true" or
// "false" instead of the "1" or "0" of weak decoding.
func decodeText(raw interface{}) (string, error) {
	var value string
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       boolToText,
		WeaklyTypedInput: true,
		Result:           &value,
	})
	if err != nil {
		return "", err
	}
	if err := decoder.Decode(raw); err != nil {
		return "", err
	}
	return value, nil
}

func boolToText(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() == reflect.Bool && to.Kind() == reflect.String {
		return strconv.FormatBool(reflect.ValueOf(data).Bool()), nil
	}
	return data, nil
}
