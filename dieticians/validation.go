package dieticians

import (
	stdErrors "errors"
	"strings"
	"time"

	"github.com/fatih/structs"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/tidepool-org/dieticians/errors"
	"github.com/tidepool-org/dieticians/openapi"
)

const schemaName = "Dietician"

// SchemaValidator validates dieticians against the schema published in the service description
type SchemaValidator struct {
	schema *openapi3.Schema
}

var _ Validator = &SchemaValidator{}

func NewSchemaValidator(doc *openapi3.T) (Validator, error) {
	schema, err := openapi.ComponentSchema(doc, schemaName)
	if err != nil {
		return nil, err
	}

	return &SchemaValidator{schema: schema}, nil
}

func (s *SchemaValidator) Validate(dietician *Dietician) error {
	validationErr := errors.NewValidationError()
	if err := s.schema.VisitJSON(ToMap(dietician), openapi3.MultiErrors()); err != nil {
		collectSchemaErrors(err, validationErr)
		if !validationErr.HasErrors() {
			return err
		}
	}

	// The schema pattern only checks the shape of the date
	if dietician.DateOfBirth != "" {
		if _, err := time.Parse(DateOfBirthLayout, dietician.DateOfBirth); err != nil {
			validationErr.Add("dateOfBirth", dateOfBirthReason)
		}
	}

	if validationErr.HasErrors() {
		return validationErr
	}
	return nil
}

const dateOfBirthReason = "must be a date in YYYY-MM-DD format"

// ToMap returns the public attributes of the dietician keyed by their json names
func ToMap(dietician *Dietician) map[string]interface{} {
	return structs.Map(*dietician)
}

func collectSchemaErrors(err error, validationErr errors.ValidationError) {
	var multi openapi3.MultiError
	if stdErrors.As(err, &multi) {
		for _, e := range multi {
			collectSchemaErrors(e, validationErr)
		}
		return
	}

	var schemaErr *openapi3.SchemaError
	if stdErrors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		if field == "" {
			field = schemaName
		}
		validationErr.Add(field, schemaErr.Reason)
	}
}
