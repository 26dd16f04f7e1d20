package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/pkg/validation"
)

var registerOnce sync.Once

// validateCity accepts the same names as the use case: non-blank, at most 100 characters
func validateCity(fl validator.FieldLevel) bool {
	return validation.IsValidCityName(fl.Field().String())
}

// RegisterValidators installs the custom binding tags on gin's validator engine
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("city", validateCity)
	})
	return err
}

// cityParams binds the :city path segment
type cityParams struct {
	City string `uri:"city" binding:"required,city"`
}

// coordinatesQuery binds ?lat=&lon=
type coordinatesQuery struct {
	Lat *float64 `form:"lat" binding:"required,latitude"`
	Lon *float64 `form:"lon" binding:"required,longitude"`
}

// historyQuery binds ?limit=
type historyQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
