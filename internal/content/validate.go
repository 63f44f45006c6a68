package content

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tessro/stepwise/internal/core"
	"github.com/tessro/stepwise/internal/errors"
)

// topicIDPattern matches URL-safe topic ids: lowercase words joined by
// single hyphens.
var topicIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func topicValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		err := validate.RegisterValidation("topicid", func(fl validator.FieldLevel) bool {
			return topicIDPattern.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("content: register topicid validation: %v", err))
		}
	})
	return validate
}

// ValidTopicID returns true if id is usable as a topic route.
func ValidTopicID(id string) bool {
	return topicIDPattern.MatchString(id)
}

// ValidateTopic checks a single topic's struct constraints.
func ValidateTopic(t core.Topic) error {
	err := topicValidator().Struct(t)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", errors.ErrContentInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	name := t.ID
	if name == "" {
		name = t.Title
	}
	return fmt.Errorf("%w: topic %q: %s", errors.ErrContentInvalid, name, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Topic.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "topicid":
		return fmt.Sprintf("%s %q must be lowercase letters, digits and hyphens", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", field, fe.Value(), fe.Param())
	case "url":
		return fmt.Sprintf("%s %q is not a valid URL", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Validate checks every topic and drops the ones that fail, keeping the
// rest in order. A repeated id keeps its first occurrence.
func Validate(topics []core.Topic) ([]core.Topic, error) {
	var (
		valid []core.Topic
		errs  []error
		seen  = make(map[string]bool, len(topics))
	)
	for _, t := range topics {
		if err := ValidateTopic(t); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[t.ID] {
			errs = append(errs, fmt.Errorf("%w: duplicate topic id %q", errors.ErrContentInvalid, t.ID))
			continue
		}
		seen[t.ID] = true
		valid = append(valid, t)
	}
	return valid, joinErrors(errs)
}

func joinErrors(errs []error) error {
	r := errors.PartialResult[struct{}]{}
	for _, err := range errs {
		r.AddError(err)
	}
	return r.Err()
}
