package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themestyle/pkg/errors"
)

func taggedCreate(tag string) CreateFunc {
	return func(StyleMap) (*Stylesheet, error) {
		return NewStylesheet(map[string]any{"variant": tag}), nil
	}
}

func taggedResolve(tag string) ResolveFunc {
	return func([]any) RenderableProps {
		return RenderableProps{"variant": tag}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		iface      *Interface
		capability string
	}{
		{name: "nil interface", iface: nil, capability: "Interface"},
		{name: "missing create", iface: &Interface{Resolve: taggedResolve("r")}, capability: "Create"},
		{name: "missing resolve", iface: &Interface{Create: taggedCreate("c")}, capability: "Resolve"},
		{name: "valid", iface: &Interface{Create: taggedCreate("c"), Resolve: taggedResolve("r")}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.iface)
			if tt.capability == "" {
				require.NoError(t, err)
				return
			}

			var ifaceErr *themeerrors.InvalidInterfaceError
			require.ErrorAs(t, err, &ifaceErr)
			assert.Equal(t, tt.capability, ifaceErr.Capability)
			assert.True(t, errors.Is(err, themeerrors.ErrMissingCapability))
		})
	}
}

func TestSelectCreateAndResolve(t *testing.T) {
	t.Parallel()

	full := &Interface{
		Create:     taggedCreate("generic"),
		Resolve:    taggedResolve("generic"),
		CreateLTR:  taggedCreate("ltr"),
		CreateRTL:  taggedCreate("rtl"),
		ResolveLTR: taggedResolve("ltr"),
		ResolveRTL: taggedResolve("rtl"),
	}
	rtlOnly := &Interface{
		Create:     taggedCreate("generic"),
		Resolve:    taggedResolve("generic"),
		CreateRTL:  taggedCreate("rtl"),
		ResolveRTL: taggedResolve("rtl"),
	}
	generic := &Interface{Create: taggedCreate("generic"), Resolve: taggedResolve("generic")}

	tests := []struct {
		name  string
		iface *Interface
		dir   Direction
		want  string
	}{
		{"full ltr", full, LTR, "ltr"},
		{"full rtl", full, RTL, "rtl"},
		{"rtl only ltr falls back", rtlOnly, LTR, "generic"},
		{"rtl only rtl", rtlOnly, RTL, "rtl"},
		{"generic ltr", generic, LTR, "generic"},
		{"generic rtl", generic, RTL, "generic"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sheet, err := tt.iface.CreateFor(tt.dir)(nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sheet.Get("variant"))
			assert.Equal(t, tt.want, tt.iface.ResolveFor(tt.dir)(nil)["variant"])
		})
	}
}

func TestSelectOnNilInterface(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SelectCreate(RTL, nil))
	assert.Nil(t, SelectResolve(LTR, nil))
}

func TestFlushBuffered(t *testing.T) {
	t.Parallel()

	calls := 0
	iface := &Interface{Create: taggedCreate("c"), Resolve: taggedResolve("r"), Flush: func() { calls++ }}
	iface.FlushBuffered()
	assert.Equal(t, 1, calls)

	var missing *Interface
	assert.NotPanics(t, missing.FlushBuffered)
	assert.NotPanics(t, (&Interface{}).FlushBuffered)
}
