package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"TRIPPLANNER_BACK-END/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	iataPattern  = regexp.MustCompile(`^[A-Z]{3}$`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		must(v.RegisterValidation("iata", func(fl validator.FieldLevel) bool {
			return iataPattern.MatchString(strings.ToUpper(fl.Field().String()))
		}))
		must(v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
			return models.Priority(fl.Field().String()).Valid()
		}))
		must(v.RegisterValidation("radius_unit", func(fl validator.FieldLevel) bool {
			return models.RadiusUnit(fl.Field().String()).Valid()
		}))
		must(v.RegisterValidation("travel_class", func(fl validator.FieldLevel) bool {
			return models.TravelClass(fl.Field().String()).Valid()
		}))
		must(v.RegisterValidation("amenity", func(fl validator.FieldLevel) bool {
			return models.Amenity(fl.Field().String()).Valid()
		}))
		validate = v
	})
	return validate
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidateStruct checks the `validate` tags of s and reports every
// failing field in one error
func ValidateStruct(s interface{}) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
