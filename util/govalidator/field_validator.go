package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron"
)

// numericRegex matches integers and decimals, with an optional sign
var numericRegex = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// FieldRules one field under validation: its path, current value, a
// pipe separated rule string such as "required|percentage" and an
// optional custom message used for every failing rule.
type FieldRules struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

type fieldValidator struct {
	field   string
	value   string
	message string
	errsBag url.Values
}

// rmMap contains all the pre defined rules and their associate methods
var rmMap = map[string]func(v *fieldValidator, args string){
	"required":   (*fieldValidator).Required,
	"numeric":    (*fieldValidator).Numeric,
	"percentage": (*fieldValidator).Percentage,
	"min":        (*fieldValidator).Min,
	"max":        (*fieldValidator).Max,
	"in":         (*fieldValidator).In,
	"cron":       (*fieldValidator).Cron,
	"timezone":   (*fieldValidator).Timezone,
}

// Validate runs every rule of every field and collects the failures in
// an error bag keyed by field path. An empty bag means all rules passed.
func Validate(fields []FieldRules) url.Values {
	errsBag := url.Values{}
	for _, f := range fields {
		v := &fieldValidator{
			field:   strings.TrimSpace(f.Field),
			value:   f.Value,
			message: f.Message,
			errsBag: errsBag,
		}
		for _, rule := range strings.Split(f.Rule, "|") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}
			name, args := rule, ""
			if i := strings.Index(rule, ":"); i >= 0 {
				name, args = rule[:i], rule[i+1:]
			}
			if run, ok := rmMap[name]; ok {
				run(v, args)
			}
		}
	}
	return errsBag
}

func (v *fieldValidator) addError(defaultMsg string) {
	if v.message != "" {
		v.errsBag.Add(v.field, v.message)
		return
	}
	v.errsBag.Add(v.field, defaultMsg)
}

// Required check the Required fields
func (v *fieldValidator) Required(_ string) {
	if v.value != "" {
		return
	}
	v.addError(fmt.Sprintf("The %s field is required", v.field))
}

// Numeric check if provided field is numeric. Empty values pass, pair
// with required to refuse them.
func (v *fieldValidator) Numeric(_ string) {
	if v.value == "" || numericRegex.MatchString(v.value) {
		return
	}
	v.addError(fmt.Sprintf("The %s field must be numeric", v.field))
}

// Percentage check if provided field is strictly between 0 and 100
func (v *fieldValidator) Percentage(_ string) {
	if v.value == "" {
		return
	}
	n, err := strconv.ParseFloat(v.value, 64)
	if err != nil || n <= 0 || n >= 100 {
		v.addError(fmt.Sprintf("The %s field must be a percentage between 0 and 100", v.field))
	}
}

// Min check the field value against a lower bound
func (v *fieldValidator) Min(args string) {
	if v.value == "" {
		return
	}
	bound, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return
	}
	n, err := strconv.ParseFloat(v.value, 64)
	if err != nil || n < bound {
		v.addError(fmt.Sprintf("The %s field must be no less than %s", v.field, args))
	}
}

// Max check the field value against an upper bound
func (v *fieldValidator) Max(args string) {
	if v.value == "" {
		return
	}
	bound, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return
	}
	n, err := strconv.ParseFloat(v.value, 64)
	if err != nil || n > bound {
		v.addError(fmt.Sprintf("The %s field must be no greater than %s", v.field, args))
	}
}

// In check if the field value is one of the listed options
func (v *fieldValidator) In(args string) {
	if v.value == "" {
		return
	}
	for _, opt := range strings.Split(args, ",") {
		if v.value == opt {
			return
		}
	}
	v.addError(fmt.Sprintf("The %s field must be one of %s", v.field, args))
}

// Cron check if the field value is a parsable standard cron expression
func (v *fieldValidator) Cron(_ string) {
	if v.value == "" {
		return
	}
	if _, err := cron.ParseStandard(v.value); err != nil {
		v.addError(fmt.Sprintf("The %s field must be a valid cron expression", v.field))
	}
}

// Timezone check if the field value is a known IANA timezone name
func (v *fieldValidator) Timezone(_ string) {
	if v.value == "" {
		return
	}
	if _, err := time.LoadLocation(v.value); err != nil {
		v.addError(fmt.Sprintf("The %s field must be a valid timezone name", v.field))
	}
}
