package guest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the structural rules of a single record: a non-empty name,
// a known gender when one is given, and no empty friend names.
// Cross-record rules (unique names, resolvable friends) are enforced by the
// candidate index and the traversal engine.
func Validate(p *Person) error {
	if p == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidPerson)
	}
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidPerson, err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w %q: %s", ErrInvalidPerson, p.Name, strings.Join(problems, "; "))
}
