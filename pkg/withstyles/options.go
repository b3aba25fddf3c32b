package withstyles

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themestyle/internal/logger"
	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
	"github.com/alexisbeaulieu97/themestyle/pkg/extend"
	"github.com/alexisbeaulieu97/themestyle/pkg/registry"
)

// Default injected prop names.
const (
	DefaultStylesPropName = "styles"
	DefaultThemePropName  = "theme"
	DefaultCSSPropName    = "css"
)

// Options configures a Binding.
type Options struct {
	StylesPropName string `validate:"required,nefield=ThemePropName,nefield=CSSPropName"`
	ThemePropName  string `validate:"required,nefield=CSSPropName"`
	CSSPropName    string `validate:"required"`

	// FlushBefore calls the interface's Flush before every resolution.
	FlushBefore bool
	// PureComponent skips rendering when props and derived styles are unchanged.
	PureComponent bool
	// ExtendableStyles declares which paths Extend may touch.
	ExtendableStyles extend.Schema `validate:"-"`

	// Name labels the binding in logs and display names.
	Name string
	// Registry is the fallback for values absent from context; the default registry when nil.
	Registry *registry.Registry `validate:"-"`
	Logger   *logger.Logger     `validate:"-"`
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults used by New.
func DefaultOptions() Options {
	return Options{
		StylesPropName: DefaultStylesPropName,
		ThemePropName:  DefaultThemePropName,
		CSSPropName:    DefaultCSSPropName,
	}
}

// WithStylesPropName renames the injected stylesheet prop.
func WithStylesPropName(name string) Option {
	return func(o *Options) { o.StylesPropName = name }
}

// WithThemePropName renames the injected theme prop.
func WithThemePropName(name string) Option {
	return func(o *Options) { o.ThemePropName = name }
}

// WithCSSPropName renames the injected resolver prop.
func WithCSSPropName(name string) Option {
	return func(o *Options) { o.CSSPropName = name }
}

// WithFlushBefore enables flushing the interface before each resolution.
func WithFlushBefore(enabled bool) Option {
	return func(o *Options) { o.FlushBefore = enabled }
}

// WithPureComponent enables skipping renders with unchanged inputs.
func WithPureComponent(enabled bool) Option {
	return func(o *Options) { o.PureComponent = enabled }
}

// WithExtendableStyles sets the schema used by Binding.Extend.
func WithExtendableStyles(schema extend.Schema) Option {
	return func(o *Options) { o.ExtendableStyles = schema }
}

// WithName labels the binding.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithRegistry sets the fallback registry.
func WithRegistry(r *registry.Registry) Option {
	return func(o *Options) { o.Registry = r }
}

// WithLogger attaches a logger for cache debug records and perf measures.
func WithLogger(log *logger.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks that prop names are set and distinct.
func (o Options) Validate() error {
	err := validatorInstance().Struct(o)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		message := "must be set"
		if fe.Tag() == "nefield" {
			message = "must differ from " + fe.Param()
		}
		return themeerrors.NewValidationError(fe.Field(), message, err)
	}
	return err
}
