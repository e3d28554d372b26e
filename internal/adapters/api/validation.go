package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherwidget.app/internal/core/widget"
)

var registerOnce sync.Once

// validateGeoStatus accepts the failure outcomes a browser can report
func validateGeoStatus(fl validator.FieldLevel) bool {
	switch widget.GeoStatus(fl.Field().String()) {
	case widget.GeoDenied, widget.GeoUnsupported:
		return true
	default:
		return false
	}
}

// RegisterValidations installs the custom binding rules on gin's validator
func RegisterValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("geo_status", validateGeoStatus)
		}
	})
}
