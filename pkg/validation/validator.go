package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxBatchSize    = 100
	MinBatchSize    = 1
	MaxRegionLength = 50
	MaxNodeIDLength = 100

	// Node and region identifiers: alphanumeric, underscore, hyphen.
	identPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

func init() {
	validate = validator.New()
}

// AnalyzeRequest represents a request for one cascade impact analysis.
// OriginNode and Severity are optional: a missing origin is resolved from the
// scenario type, and an unknown severity degrades to moderate.
type AnalyzeRequest struct {
	ScenarioType string `json:"scenarioType" validate:"required,min=1,max=50"`
	OriginNode   string `json:"originNode" validate:"omitempty,max=100"`
	Region       string `json:"region" validate:"required,min=1,max=50"`
	Severity     string `json:"severity" validate:"omitempty,max=20"`
}

// ValidateAnalyzeRequest validates a cascade analysis request
func ValidateAnalyzeRequest(req *AnalyzeRequest) error {
	if req == nil {
		return errors.New("analyze request cannot be nil")
	}

	// Validate using struct tags
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	if !identPattern.MatchString(req.Region) {
		return fmt.Errorf("Region: %q contains invalid characters (only alphanumeric, underscore and hyphen allowed)", req.Region)
	}
	if !identPattern.MatchString(req.ScenarioType) {
		return fmt.Errorf("ScenarioType: %q contains invalid characters (only alphanumeric, underscore and hyphen allowed)", req.ScenarioType)
	}
	if req.OriginNode != "" && !identPattern.MatchString(req.OriginNode) {
		return fmt.Errorf("OriginNode: %q contains invalid characters (only alphanumeric, underscore and hyphen allowed)", req.OriginNode)
	}

	return nil
}

// ValidateBatchSize validates the size of a batch analysis request
func ValidateBatchSize(size int) error {
	if size < MinBatchSize {
		return fmt.Errorf("batch size must be at least %d, got %d", MinBatchSize, size)
	}
	if size > MaxBatchSize {
		return fmt.Errorf("batch size must not exceed %d, got %d", MaxBatchSize, size)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
