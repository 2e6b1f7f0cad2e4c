package enum_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/betterenum/enum"
	"github.com/zjrosen/betterenum/log"
)

type palette struct {
	RED   *color
	GREEN *color
	BLUE  *color
}

func newPalette() *palette {
	return &palette{
		RED:   newColor("#ff0000"),
		GREEN: newColor("#00ff00"),
		BLUE:  newColor("#0000ff"),
	}
}

func TestRegister_ValuesInDeclarationOrder(t *testing.T) {
	r, _ := newRegistry(t)
	p := newPalette()

	colors, err := enum.Register[*color](r, p)
	require.NoError(t, err)

	require.Equal(t, []*color{p.RED, p.GREEN, p.BLUE}, colors.Values())
	require.Equal(t, []string{"RED", "GREEN", "BLUE"}, colors.Names())
	require.Equal(t, 3, colors.Len())
}

func TestRegister_FromString(t *testing.T) {
	r, _ := newRegistry(t)
	p := newPalette()
	colors := enum.MustRegister[*color](r, p)

	got, ok := colors.FromString("GREEN")
	require.True(t, ok)
	require.Same(t, p.GREEN, got)
	require.Equal(t, "#00ff00", got.hex)

	for _, name := range []string{"MISSING", "", "green", " GREEN"} {
		got, ok := colors.FromString(name)
		require.False(t, ok, "name %q", name)
		require.Nil(t, got, "name %q", name)
	}
}

func TestRegister_RoundTrip(t *testing.T) {
	r, _ := newRegistry(t)
	colors := enum.MustRegister[*color](r, newPalette())

	for _, v := range colors.Values() {
		got, ok := colors.FromString(v.String())
		require.True(t, ok)
		require.Same(t, v, got)
	}
}

func TestRegister_AliasKeepsFirstName(t *testing.T) {
	r, logs := newRegistry(t)
	x := newColor("#123456")
	y := newColor("#654321")
	decl := struct{ A, B, C *color }{x, x, y}

	colors, err := enum.Register[*color](r, &decl)
	require.NoError(t, err)

	require.Equal(t, "A", x.String())
	require.Equal(t, []*color{x, y}, colors.Values())
	require.Equal(t, []string{"A", "C"}, colors.Names())

	_, ok := colors.FromString("B")
	require.False(t, ok)
	require.True(t, logs.Has(log.LevelDebug, "alias skipped"))
}

func TestRegister_ReRegistrationKeepsExistingEntries(t *testing.T) {
	r, logs := newRegistry(t)
	p := newPalette()
	colors := enum.MustRegister[*color](r, p)
	before := colors.Values()

	other := struct{ RED, PURPLE *color }{newColor("#ff0001"), newColor("#800080")}
	_, err := enum.Register[*color](r, &other)
	require.ErrorIs(t, err, enum.ErrAlreadyRegistered)

	require.Equal(t, before, colors.Values())
	got, ok := colors.FromString("RED")
	require.True(t, ok)
	require.Same(t, p.RED, got)
	_, ok = colors.FromString("PURPLE")
	require.False(t, ok)
	require.False(t, other.RED.Registered())
	require.True(t, logs.Has(log.LevelError, "registration rejected"))

	// Same declaration again is rejected too.
	_, err = enum.Register[*color](r, p)
	require.ErrorIs(t, err, enum.ErrAlreadyRegistered)
	require.Equal(t, "RED", p.RED.String())
}

func TestRegister_ZeroInstancesWarns(t *testing.T) {
	r, logs := newRegistry(t)

	colors, err := enum.Register[*color](r, struct{ Label string }{"none"})
	require.NoError(t, err)
	require.Empty(t, colors.Values())
	require.NotNil(t, colors.Values())
	require.True(t, logs.Has(log.LevelWarn, "no enum instances declared"))
	require.Len(t, r.Types(), 1, "empty partition is created")

	// An empty partition can still be populated by a corrected declaration.
	p := newPalette()
	_, err = enum.Register[*color](r, p)
	require.NoError(t, err)
	require.Equal(t, 3, colors.Len())
}

func TestRegister_CrossTypeIsolation(t *testing.T) {
	r, _ := newRegistry(t)
	colorDecl := struct{ X *color }{newColor("#000000")}
	shapeDecl := struct{ X, Y *shape }{&shape{sides: 3}, &shape{sides: 4}}

	colors := enum.MustRegister[*color](r, &colorDecl)
	shapes := enum.MustRegister[*shape](r, &shapeDecl)

	c, ok := colors.FromString("X")
	require.True(t, ok)
	require.Same(t, colorDecl.X, c)

	s, ok := shapes.FromString("X")
	require.True(t, ok)
	require.Same(t, shapeDecl.X, s)

	_, ok = colors.FromString("Y")
	require.False(t, ok)
	require.Len(t, colors.Values(), 1)
	require.Len(t, shapes.Values(), 2)
}

func TestRegister_SkipsNonMemberFields(t *testing.T) {
	r, _ := newRegistry(t)
	decl := struct {
		Label   string
		RED     *color
		hidden  *color
		Ignored *color `enum:"-"`
		Square  *shape
		Count   int
		GREEN   *color
	}{
		Label:   "palette",
		RED:     newColor("#ff0000"),
		hidden:  newColor("#111111"),
		Ignored: newColor("#222222"),
		Square:  &shape{sides: 4},
		Count:   2,
		GREEN:   newColor("#00ff00"),
	}

	colors, err := enum.Register[*color](r, &decl)
	require.NoError(t, err)
	require.Equal(t, []string{"RED", "GREEN"}, colors.Names())
	require.False(t, decl.hidden.Registered())
	require.False(t, decl.Ignored.Registered())
	require.False(t, decl.Square.Registered())
}

func TestRegister_InterfaceFieldHoldingInstance(t *testing.T) {
	r, _ := newRegistry(t)
	decl := struct {
		RED   fmt.Stringer
		EMPTY fmt.Stringer
	}{RED: newColor("#ff0000")}

	colors, err := enum.Register[*color](r, decl)
	require.NoError(t, err)
	require.Equal(t, []string{"RED"}, colors.Names())
}

func TestRegister_NilFieldSkippedWithWarning(t *testing.T) {
	r, logs := newRegistry(t)
	decl := struct{ RED, GREEN *color }{RED: newColor("#ff0000")}

	colors, err := enum.Register[*color](r, &decl)
	require.NoError(t, err)
	require.Equal(t, []string{"RED"}, colors.Names())
	warning, ok := logs.Find(log.LevelWarn, "nil enum field skipped")
	require.True(t, ok)
	require.Equal(t, log.CatRegistry, warning.Category)
	require.Contains(t, warning.String(), "field=GREEN")
}

func TestRegister_InvalidDeclaration(t *testing.T) {
	r, _ := newRegistry(t)

	var nilDecl *palette
	tests := []struct {
		name string
		decl any
	}{
		{"int", 42},
		{"nil", nil},
		{"nil pointer", nilDecl},
		{"slice", []*color{newColor("#fff")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := enum.Register[*color](r, tt.decl)
			require.ErrorIs(t, err, enum.ErrInvalidDeclaration)
			require.Nil(t, p)
		})
	}
	require.Empty(t, r.Types())
}

func TestRegister_NonPointerMemberRejected(t *testing.T) {
	r, _ := newRegistry(t)
	decl := struct{ A byValue }{byValue{&enum.Enum{}}}

	p, err := enum.Register[byValue](r, decl)
	require.ErrorIs(t, err, enum.ErrNotEnum)
	require.Nil(t, p)
	require.Empty(t, r.Types(), "no partition is created")
	require.Empty(t, enum.Of[byValue](r).Values())
}

func TestRegister_InstanceNamedInAnotherRegistry(t *testing.T) {
	r1, _ := newRegistry(t)
	r2, _ := newRegistry(t)
	p := newPalette()
	enum.MustRegister[*color](r1, p)

	_, err := enum.Register[*color](r2, struct{ CRIMSON *color }{p.RED})
	require.ErrorIs(t, err, enum.ErrAlreadyNamed)
	require.Equal(t, "RED", p.RED.String())
	require.Empty(t, r2.Types())
}

func TestRegister_FailureCommitsNothing(t *testing.T) {
	r1, _ := newRegistry(t)
	r2, _ := newRegistry(t)
	taken := newColor("#ff0000")
	enum.MustRegister[*color](r1, struct{ TAKEN *color }{taken})

	fresh := newColor("#00ff00")
	_, err := enum.Register[*color](r2, struct{ FRESH, TAKEN *color }{fresh, taken})
	require.ErrorIs(t, err, enum.ErrAlreadyNamed)
	require.False(t, fresh.Registered())
	require.Empty(t, enum.Of[*color](r2).Values())
}

func TestRegister_Sealed(t *testing.T) {
	r, _ := newRegistry(t)
	colors := enum.MustRegister[*color](r, newPalette())

	require.True(t, r.Seal())
	require.True(t, r.Sealed())
	require.False(t, r.Seal())

	_, err := enum.Register[*shape](r, struct{ TRI *shape }{&shape{sides: 3}})
	require.ErrorIs(t, err, enum.ErrSealed)
	require.Equal(t, 3, colors.Len())
}

func TestMustRegister_Panics(t *testing.T) {
	r, _ := newRegistry(t)
	enum.MustRegister[*color](r, newPalette())

	requirePanicsIs(t, enum.ErrAlreadyRegistered, func() {
		enum.MustRegister[*color](r, newPalette())
	})
}
