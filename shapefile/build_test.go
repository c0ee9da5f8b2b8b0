package shapefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/y-du/simple-struct/structure"
)

func TestBuild(t *testing.T) {
	f, err := LoadFile("testdata/people.yaml")
	require.NoError(t, err)

	reg, err := Build(f)
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"Person", "Address", "Geo"}, reg.Names())

	person, ok := reg.Lookup("Person")
	require.True(t, ok)
	assert.Equal(t, "people.Person", person.QualifiedName())
	assert.Equal(t, []string{"name", "age", "address", "tags"}, person.Names())

	address := reg.MustLookup("Address")

	field, ok := person.Field("address")
	require.True(t, ok)
	assert.Same(t, address, field.Type)

	p, err := person.New(map[string]any{"name": "Ada", "address": map[string]any{"geo": map[string]any{"lat": 1.0}}})
	require.NoError(t, err)

	lat, err := p.Lookup("address.geo.lat")
	require.NoError(t, err)
	assert.Equal(t, 1.0, lat)

	lon, err := p.Lookup("address.geo.lon")
	require.NoError(t, err)
	assert.Equal(t, -0.12, lon)

	_, ok = reg.Lookup("Nope")
	assert.False(t, ok)
	assert.Panics(t, func() { reg.MustLookup("Nope") })
}

func TestBuild_SharedNestedType(t *testing.T) {
	yaml := `
shapes:
  - name: Money
    fields:
      amount: 0
      currency: EUR
  - name: Invoice
    fields:
      net: !shape Money
      gross: !shape Money
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	reg, err := Build(f)
	require.NoError(t, err)

	inv := reg.MustLookup("Invoice").MustNew(map[string]any{"gross": map[string]any{"amount": 119}})

	net, _ := inv.Nested("net")
	gross, _ := inv.Nested("gross")
	assert.NotSame(t, net, gross)
	assert.Same(t, net.Type(), gross.Type())

	assert.Equal(t, `Invoice({"net": {"amount": 0, "currency": "EUR"}, "gross": {"amount": 119, "currency": "EUR"}})`, inv.String())
}

func TestBuild_Invalid(t *testing.T) {
	f, err := Parse([]byte("shapes:\n  - name: A\n    fields:\n      b: !shape B\n"))
	require.NoError(t, err)

	_, err = Build(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown_shape")
}

func TestBuild_MappingDefaultsAreCopied(t *testing.T) {
	f, err := Parse([]byte("shapes:\n  - name: A\n    fields:\n      meta:\n        k: v\n"))
	require.NoError(t, err)

	reg, err := Build(f)
	require.NoError(t, err)

	a := reg.MustLookup("A")

	first, err := structure.Value[*structure.Map](a.MustNew(nil), "meta")
	require.NoError(t, err)
	first.Set("k", "changed")

	second, err := structure.Value[*structure.Map](a.MustNew(nil), "meta")
	require.NoError(t, err)

	v, _ := second.Get("k")
	assert.Equal(t, "v", v)
}
