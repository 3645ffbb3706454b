package snapshot

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	goverrors "github.com/nsd23387/campaign-governance/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// validateDocument performs schema validation on a decoded snapshot or
// records document.
func validateDocument(doc any) error {
	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		field := wireFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return goverrors.NewValidationError(field, msg, err)
	}

	return goverrors.NewValidationError("snapshot", err.Error(), err)
}

// wireFieldName lowercases the struct namespace so error messages name
// fields the way they appear in the file.
func wireFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
