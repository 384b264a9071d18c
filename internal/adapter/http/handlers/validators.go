package handlers

import (
	"errors"
	"sync"

	"quote_service/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the quote form enum tags to gin's validator. It is
// safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		tags := map[string]validator.Func{
			"industry_type": func(fl validator.FieldLevel) bool {
				return entities.IndustryType(fl.Field().String()).Valid()
			},
			"paper_size": func(fl validator.FieldLevel) bool {
				return entities.PaperSize(fl.Field().String()).Valid()
			},
			"priority": func(fl validator.FieldLevel) bool {
				return entities.Priority(fl.Field().String()).Valid()
			},
		}
		for tag, fn := range tags {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

// bindingDetails turns validator errors into {"field": "tag"} pairs for the
// error envelope.
func bindingDetails(err error) map[string]any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
