package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/pluqqy/pluqqy-designer/pkg/codegen"
	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

var handlerNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateForExport checks a snapshot before it is handed to a generator.
// Generators interpolate values literally, so this is the only place that
// catches a non-numeric slider value, a value that would end its string
// literal early, or a handler name that would not compile in (or would
// break) the program generated for one of targets. No targets means all of
// them; optsFor may be nil. It is opt-in.
func ValidateForExport(layout []models.WidgetPlacement, optsFor func(codegen.Target) codegen.Options, targets ...codegen.Target) error {
	if len(targets) == 0 {
		targets = codegen.Targets
	}
	taken := make(map[string]bool)
	for _, t := range targets {
		var opts codegen.Options
		if optsFor != nil {
			opts = optsFor(t)
		}
		for _, name := range codegen.ReservedNames(t, opts, layout) {
			taken[name] = true
		}
	}

	errs := validation.Errors{}
	for i := range layout {
		p := layout[i]
		err := validation.ValidateStruct(&p,
			validation.Field(&p.Type, validation.By(knownWidgetType)),
			validation.Field(&p.X, validation.Min(0)),
			validation.Field(&p.Y, validation.Min(0)),
			validation.Field(&p.W, validation.Required, validation.Min(1)),
			validation.Field(&p.H, validation.Required, validation.Min(1)),
			validation.Field(&p.Value, validation.By(valueRule(p.Type))),
			validation.Field(&p.Events, validation.By(handlerNames(taken))),
		)
		if err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return wrapValidationError(errs, "layout failed export validation", exportValidationCode)
}

func knownWidgetType(value any) error {
	wt, _ := value.(models.WidgetType)
	if !wt.Known() {
		return errors.New("unknown widget type")
	}
	return nil
}

func valueRule(wt models.WidgetType) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		if strings.ContainsAny(s, `'"\`) {
			return errors.New("must not contain quotes or backslashes")
		}
		if strings.IndexFunc(s, unicode.IsControl) >= 0 {
			return errors.New("must not contain newlines or other control characters")
		}
		switch wt {
		case models.WidgetDropdown:
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n >= len(models.DropdownPlaceholders) {
				return fmt.Errorf("must be an item index between 0 and %d", len(models.DropdownPlaceholders)-1)
			}
		case models.WidgetSlider, models.WidgetProgressBar:
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 100 {
				return errors.New("must be an integer between 0 and 100")
			}
		}
		return nil
	}
}

func handlerNames(taken map[string]bool) validation.RuleFunc {
	return func(value any) error {
		events, _ := value.(map[string]string)
		for event, handler := range events {
			switch {
			case handler == "":
			case !handlerNamePattern.MatchString(handler):
				return fmt.Errorf("handler for %s must be a valid identifier", event)
			case strings.HasPrefix(handler, "__"):
				return fmt.Errorf("handler for %s must not start with a double underscore", event)
			case taken[handler]:
				return fmt.Errorf("handler for %s must not be named %s, the generated program already uses that name", event, handler)
			}
		}
		return nil
	}
}
