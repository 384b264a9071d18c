package response

import "quote_service/internal/domain/quoteform"

type StepValidationResponse struct {
	Step     int               `json:"step"`
	StepName string            `json:"stepName"`
	IsValid  bool              `json:"isValid"`
	Errors   map[string]string `json:"errors"`
}

func FromStepResult(step quoteform.Step, res quoteform.StepResult) StepValidationResponse {
	errs := res.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return StepValidationResponse{
		Step:     int(step),
		StepName: step.String(),
		IsValid:  res.IsValid,
		Errors:   errs,
	}
}

type BuyoutResponse struct {
	Buyout string `json:"buyout"`
}
