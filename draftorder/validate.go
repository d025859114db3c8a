package draftorder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/theabdulsaboor/Vercel-Shopify-App/apierrors"
)

var validate = validator.New()

func fieldName(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		return fe.StructField()
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// ValidateBulk checks the bulk payload shape before any upstream call.
func ValidateBulk(request *BulkRequest) error {
	if len(request.Items) == 0 {
		return apierrors.New(apierrors.CodeValidation, "No items provided")
	}
	if err := validate.Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			missing := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				missing = append(missing, fieldName(fe))
			}
			return apierrors.New(apierrors.CodeValidation, "Missing required fields").
				WithDetails(map[string]any{"required": missing})
		}
		return apierrors.Wrap(apierrors.CodeValidation, err, "Invalid cart payload")
	}
	for i, item := range request.Items {
		if !item.Quantity.Positive() {
			return apierrors.New(apierrors.CodeValidation, fmt.Sprintf("Invalid quantity for item %d", i))
		}
	}
	return nil
}

// ValidateLegacy checks the single-item payload shape.
func ValidateLegacy(request *LegacyRequest) error {
	if err := validate.Struct(request); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			missing := make([]string, 0, len(fieldErrors))
			for _, fe := range fieldErrors {
				missing = append(missing, fieldName(fe))
			}
			return apierrors.New(apierrors.CodeValidation, "Missing required fields").
				WithDetails(map[string]any{"required": missing})
		}
		return apierrors.Wrap(apierrors.CodeValidation, err, "Invalid request payload")
	}
	if !request.Quantity.Positive() {
		return apierrors.New(apierrors.CodeValidation, "Missing required fields").
			WithDetails(map[string]any{"required": []string{"quantity"}})
	}
	return nil
}
