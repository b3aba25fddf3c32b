package extend

import "github.com/alexisbeaulieu97/themestyle/pkg/style"

// Extend returns a declaration that evaluates base and ext for a theme,
// validates the extension against schema and deep-merges the two. Validation
// only gates whether the merge happens; it never changes its result.
//
// The result can itself be the base of a further Extend; each layer is
// validated against the schema it was given.
func Extend(base style.CheckedDeclarationFunc, ext style.DeclarationFunc, schema Schema) style.CheckedDeclarationFunc {
	extending := ext.Checked()
	return func(theme *style.Theme) (style.StyleMap, error) {
		var baseStyles style.StyleMap
		if base != nil {
			var err error
			baseStyles, err = base(theme)
			if err != nil {
				return nil, err
			}
		}

		extStyles, err := extending(theme)
		if err != nil {
			return nil, err
		}
		if err := Validate(extStyles, schema, theme); err != nil {
			return nil, err
		}
		return DeepMerge(baseStyles, extStyles), nil
	}
}

// Chain applies Extend once per extension, in order, against the same schema.
func Chain(base style.CheckedDeclarationFunc, schema Schema, exts ...style.DeclarationFunc) style.CheckedDeclarationFunc {
	result := base
	for _, ext := range exts {
		if ext == nil {
			continue
		}
		result = Extend(result, ext, schema)
	}
	if result == nil {
		return style.DeclarationFunc(nil).Checked()
	}
	return result
}
