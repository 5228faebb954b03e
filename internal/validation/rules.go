package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode"
)

// FieldError is one violated rule in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Rule checks a single decoded JSON value. Check never panics on foreign
// types; a value of the wrong type simply fails the rule.
type Rule struct {
	Name    string
	Message string
	Check   func(value any) bool
}

// Field binds a payload field to its rules.
type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

// RuleSet is the declarative validation contract of one endpoint.
// Instances carry no mutable state and are safe for concurrent use.
type RuleSet []Field

// F declares a required field.
func F(name string, rules ...Rule) Field {
	return Field{Name: name, Rules: rules}
}

// Opt declares an optional field: rules run only when the field is present.
func Opt(name string, rules ...Rule) Field {
	return Field{Name: name, Optional: true, Rules: rules}
}

// Validate evaluates every rule of every field against the decoded body and
// returns the accumulated violations. It never short-circuits across fields;
// a valid payload yields an empty slice.
func (rs RuleSet) Validate(body map[string]any) []FieldError {
	var errs []FieldError
	for _, f := range rs {
		value, present := body[f.Name]
		if !present || value == nil {
			if !f.Optional {
				errs = append(errs, FieldError{
					Field:   f.Name,
					Rule:    "required",
					Message: fmt.Sprintf("%s is required", f.Name),
				})
			}
			continue
		}
		for _, r := range f.Rules {
			if !r.Check(value) {
				errs = append(errs, FieldError{Field: f.Name, Rule: r.Name, Message: r.Message})
			}
		}
	}
	return errs
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asInt accepts JSON numbers (decoded as float64) with integral values
// and numeric strings, mirroring how clients submit ids and counters.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// NonEmpty requires a non-empty string.
func NonEmpty() Rule {
	return Rule{
		Name:    "notEmpty",
		Message: "must not be empty",
		Check: func(v any) bool {
			s, ok := asString(v)
			return ok && len(s) > 0
		},
	}
}

// MaxLen bounds string length from above.
func MaxLen(n int) Rule {
	return Rule{
		Name:    "maxLength",
		Message: fmt.Sprintf("must be at most %d characters", n),
		Check: func(v any) bool {
			s, ok := asString(v)
			return ok && len(s) <= n
		},
	}
}

// LengthBetween bounds string length on both ends.
func LengthBetween(min, max int) Rule {
	return Rule{
		Name:    "length",
		Message: fmt.Sprintf("must be between %d and %d characters", min, max),
		Check: func(v any) bool {
			s, ok := asString(v)
			return ok && len(s) >= min && len(s) <= max
		},
	}
}

// Email requires a plausible email shape.
func Email() Rule {
	return Rule{
		Name:    "email",
		Message: "must be a valid email address",
		Check: func(v any) bool {
			s, ok := asString(v)
			return ok && emailRe.MatchString(s)
		},
	}
}

// Integer requires an integral number.
func Integer() Rule {
	return Rule{
		Name:    "integer",
		Message: "must be an integer",
		Check: func(v any) bool {
			_, ok := asInt(v)
			return ok
		},
	}
}

// IntegerMin requires an integral number of at least min.
func IntegerMin(min int64) Rule {
	return Rule{
		Name:    "integerMin",
		Message: fmt.Sprintf("must be an integer of at least %d", min),
		Check: func(v any) bool {
			i, ok := asInt(v)
			return ok && i >= min
		},
	}
}

// NumberMin requires a number (integral or not) of at least min.
func NumberMin(min float64) Rule {
	return Rule{
		Name:    "numberMin",
		Message: fmt.Sprintf("must be a number of at least %v", min),
		Check: func(v any) bool {
			switch n := v.(type) {
			case float64:
				return n >= min
			case string:
				f, err := strconv.ParseFloat(n, 64)
				return err == nil && f >= min
			default:
				return false
			}
		},
	}
}

// ISODate requires a YYYY-MM-DD calendar date.
func ISODate() Rule {
	return Rule{
		Name:    "isoDate",
		Message: "must be a date in YYYY-MM-DD format",
		Check: func(v any) bool {
			s, ok := asString(v)
			if !ok {
				return false
			}
			_, err := time.Parse("2006-01-02", s)
			return err == nil
		},
	}
}

// StrongPassword requires at least 8 characters with at least one
// lowercase letter and one digit. Uppercase letters and symbols are
// allowed but not required.
func StrongPassword() Rule {
	return Rule{
		Name:    "strongPassword",
		Message: "must be at least 8 characters with a lowercase letter and a digit",
		Check: func(v any) bool {
			s, ok := asString(v)
			if !ok || len(s) < 8 {
				return false
			}
			var lower, digit bool
			for _, r := range s {
				if unicode.IsLower(r) {
					lower = true
				}
				if unicode.IsDigit(r) {
					digit = true
				}
			}
			return lower && digit
		},
	}
}

// ValidID reports whether a path parameter is a positive integer id.
func ValidID(s string) bool {
	i, err := strconv.ParseInt(s, 10, 64)
	return err == nil && i >= 1
}
