package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/vickinc/eazybizy/internal/core/reporting"
)

// currencyTag covers ISO 4217 codes and the longer ticker codes of wallet
// assets such as USDT. Services upper-case codes before storing them.
const currencyTag = "alphanum,min=3,max=10"

var (
	registerValidOnce sync.Once
	registerValidErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// It is safe to call more than once.
func RegisterValidators() error {
	registerValidOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterAlias("currency", currencyTag)
		registerValidErr = v.RegisterValidation("selector", validateSelector)
	})
	return registerValidErr
}

func validateSelector(fl validator.FieldLevel) bool {
	_, err := reporting.ParseSelector(fl.Field().String())
	return err == nil
}
