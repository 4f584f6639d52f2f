package remote

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	commonerrors "grc-docengine/internal/common/errors"
)

// analysisResponseSchema guards the analyze-upload payload. The backend is
// outside our control; a structurally broken answer must count as a failed
// call so the workflow uses the local analyzer instead of storing garbage.
const analysisResponseSchema = `{
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["score", "riskLevel", "completeness"],
			"properties": {
				"score": {"type": "integer", "minimum": 0, "maximum": 100},
				"summary": {"type": "string"},
				"riskLevel": {"enum": ["low", "medium", "high", "critical"]},
				"completeness": {
					"type": "array",
					"items": {
						"type": "object",
						"required": ["item", "status"],
						"properties": {
							"item": {"type": "string"},
							"status": {"enum": ["complete", "partial", "missing"]},
							"notes": {"type": "string"}
						}
					}
				}
			}
		}
	}
}`

var analysisSchemaLoader = gojsonschema.NewStringLoader(analysisResponseSchema)

func validateAnalysisPayload(body []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(analysisSchemaLoader, documentLoader)
	if err != nil {
		return commonerrors.NewRemoteResponseInvalidError(fmt.Sprintf("validation error: %v", err))
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return commonerrors.NewRemoteResponseInvalidError(fmt.Sprintf("analysis payload invalid: %v", errs))
	}

	return nil
}
