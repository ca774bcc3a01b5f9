package tableschema

import (
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/tableschema/pkg/frame"
	"github.com/dmitrymomot/tableschema/pkg/validate"
)

// schemaFile is the YAML shape of a declarative schema definition.
type schemaFile struct {
	Ordered bool         `yaml:"ordered"`
	Columns []columnFile `yaml:"columns"`
}

type columnFile struct {
	Name       string     `yaml:"name"`
	AllowEmpty bool       `yaml:"allow_empty"`
	Rules      []ruleFile `yaml:"rules"`
}

type ruleFile struct {
	Type            string   `yaml:"type"`
	Message         string   `yaml:"message"`
	Min             *float64 `yaml:"min"`
	Max             *float64 `yaml:"max"`
	Pattern         string   `yaml:"pattern"`
	Options         []string `yaml:"options"`
	CaseInsensitive bool     `yaml:"case_insensitive"`
	DataType        string   `yaml:"data_type"`
	Layout          string   `yaml:"layout"`
	Keep            string   `yaml:"keep"`
}

// ruleBuilders maps schema-file rule names to their constructors.
var ruleBuilders = map[string]func(r ruleFile) (*validate.Validation, error){
	"in_range": func(r ruleFile) (*validate.Validation, error) {
		min, max := math.Inf(-1), math.Inf(1)
		if r.Min != nil {
			min = *r.Min
		}
		if r.Max != nil {
			max = *r.Max
		}
		if r.Min == nil && r.Max == nil {
			return nil, fmt.Errorf("%w: in_range needs min or max", ErrInvalidRule)
		}
		return validate.InRange(min, max), nil
	},
	"matches_pattern": func(r ruleFile) (*validate.Validation, error) {
		if r.Pattern == "" {
			return nil, fmt.Errorf("%w: matches_pattern needs a pattern", ErrInvalidRule)
		}
		return validate.MatchesPattern(r.Pattern), nil
	},
	"in_list": func(r ruleFile) (*validate.Validation, error) {
		if len(r.Options) == 0 {
			return nil, fmt.Errorf("%w: in_list needs options", ErrInvalidRule)
		}
		if r.CaseInsensitive {
			return validate.InListCaseInsensitive(r.Options), nil
		}
		return validate.InList(r.Options), nil
	},
	"not_in_list": func(r ruleFile) (*validate.Validation, error) {
		if len(r.Options) == 0 {
			return nil, fmt.Errorf("%w: not_in_list needs options", ErrInvalidRule)
		}
		return validate.NotInList(r.Options), nil
	},
	"is_type": func(r ruleFile) (*validate.Validation, error) {
		dt, err := parseDataType(r.DataType)
		if err != nil {
			return nil, err
		}
		return validate.IsType(dt), nil
	},
	"date_format": func(r ruleFile) (*validate.Validation, error) {
		if r.Layout == "" {
			return nil, fmt.Errorf("%w: date_format needs a layout", ErrInvalidRule)
		}
		return validate.DateFormat(r.Layout), nil
	},
	"leading_whitespace": func(ruleFile) (*validate.Validation, error) {
		return validate.LeadingWhitespace(), nil
	},
	"trailing_whitespace": func(ruleFile) (*validate.Validation, error) {
		return validate.TrailingWhitespace(), nil
	},
	"is_distinct": func(r ruleFile) (*validate.Validation, error) {
		keep, err := parseKeep(r.Keep)
		if err != nil {
			return nil, err
		}
		return validate.IsDistinct(keep), nil
	},
	"not_empty": func(ruleFile) (*validate.Validation, error) {
		return validate.NotEmpty(), nil
	},
}

// LoadSchema reads a YAML schema definition from r. Unknown rule names and
// missing rule parameters are configuration errors.
func LoadSchema(r io.Reader) (*Schema, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var file schemaFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	columns := make([]Column, 0, len(file.Columns))
	for _, cf := range file.Columns {
		rules := make([]*validate.Validation, 0, len(cf.Rules))
		for _, rf := range cf.Rules {
			build, ok := ruleBuilders[rf.Type]
			if !ok {
				return nil, &validate.ConfigurationError{
					Reason: fmt.Sprintf("column %q", cf.Name),
					Err:    fmt.Errorf("%w: %q", ErrUnknownRule, rf.Type),
				}
			}
			rule, err := build(rf)
			if err != nil {
				return nil, &validate.ConfigurationError{
					Reason: fmt.Sprintf("column %q", cf.Name),
					Err:    err,
				}
			}
			if rf.Message != "" {
				rule = rule.WithMessage(rf.Message)
			}
			rules = append(rules, rule)
		}
		col := NewColumn(cf.Name, rules...)
		if cf.AllowEmpty {
			col = col.Optional()
		}
		columns = append(columns, col)
	}

	var opts []Option
	if file.Ordered {
		opts = append(opts, Ordered())
	}
	return New(columns, opts...)
}

// LoadSchemaFile reads a YAML schema definition from disk.
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()
	return LoadSchema(f)
}

func parseDataType(s string) (frame.DataType, error) {
	switch s {
	case "string":
		return frame.TypeString, nil
	case "int":
		return frame.TypeInt, nil
	case "float":
		return frame.TypeFloat, nil
	case "bool":
		return frame.TypeBool, nil
	case "time":
		return frame.TypeTime, nil
	default:
		return 0, fmt.Errorf("%w: is_type data_type %q", ErrInvalidRule, s)
	}
}

func parseKeep(s string) (validate.Keep, error) {
	switch s {
	case "", "none":
		return validate.KeepNone, nil
	case "first":
		return validate.KeepFirst, nil
	case "last":
		return validate.KeepLast, nil
	default:
		return 0, fmt.Errorf("%w: is_distinct keep %q", ErrInvalidRule, s)
	}
}
