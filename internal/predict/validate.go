package predict

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var weatherConditions = map[string]struct{}{
	"Heavy Rain": {}, "Moderate Rain": {}, "Light Rain": {}, "Drizzle": {},
	"Foggy": {}, "Hot and Sunny": {}, "Sunny": {}, "Partly Cloudy": {},
	"Cloudy": {}, "Hot": {}, "Warm": {}, "Mild": {},
	"Cool": {}, "Cold": {}, "Very Cold": {},
}

// SupportedBrands are the labels the car recognizer may return.
var SupportedBrands = []string{"BMW", "Mercedes", "Audi", "Toyota", "Honda", "Ford"}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		mustRegister(v, "weather_condition", func(fl validator.FieldLevel) bool {
			_, ok := weatherConditions[fl.Field().String()]
			return ok
		})
		mustRegister(v, "car_brand", func(fl validator.FieldLevel) bool {
			for _, b := range SupportedBrands {
				if b == fl.Field().String() {
					return true
				}
			}
			return false
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("predict: register %s: %v", tag, err))
	}
}

// check validates a result struct and folds field errors into ErrInvalidResult.
func check(result any) error {
	err := validatorInstance().Struct(result)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+"("+fe.Tag()+")")
	}
	return fmt.Errorf("%w: %s", ErrInvalidResult, strings.Join(fields, ", "))
}
