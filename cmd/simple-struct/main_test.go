package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testShapes = `version: "1"
shapes:
  - name: Person
    fields:
      name: ""
      age: 0
      address: !shape Address
  - name: Address
    fields:
      city: ""
      zip: ""
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	err := execRootCmd(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestDefaults(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	out, _, err := run(t, "", "defaults", "--shapes", shapes, "--type", "Person")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"name":    "",
		"age":     float64(0),
		"address": map[string]any{"city": "", "zip": ""},
	}, got)

	// keys keep declaration order
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"address"`))
}

func TestDefaultsYAML(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	out, _, err := run(t, "", "defaults", "--shapes", shapes, "--type", "Address", "--format", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"city": "", "zip": ""}, got)
}

func TestPopulateFromStdin(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	out, _, err := run(t, `{"name": "Al", "address": {"city": "NYC"}, "extra": 1}`,
		"populate", "--shapes", shapes)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{
		"name":    "Al",
		"age":     float64(0),
		"address": map[string]any{"city": "NYC", "zip": ""},
	}, got)
}

func TestPopulateFromYAMLFile(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)
	input := writeTemp(t, "input.yml", "name: Bo\nage: 41\naddress:\n  zip: \"10001\"\n")

	out, errOut, err := run(t, "", "populate", "--shapes", shapes, "--type", "Person",
		"--input", input, "--format", "yaml", "--dump")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Bo", got["name"])
	assert.Equal(t, 41, got["age"])
	assert.Equal(t, map[string]any{"city": "", "zip": "10001"}, got["address"])
	assert.Contains(t, errOut, "Bo")
}

func TestPopulateRejectsNonMapping(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	_, errOut, err := run(t, `{"address": 5}`, "populate", "--shapes", shapes, "--type", "Person")
	require.Error(t, err)
	assert.Contains(t, errOut, "Person.address")
}

func TestUnknownType(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	_, errOut, err := run(t, "", "defaults", "--shapes", shapes, "--type", "Persn")
	require.Error(t, err)
	assert.Contains(t, errOut, `unknown shape "Persn"`)
	assert.Contains(t, errOut, "did you mean Person?")
}

func TestMissingShapesFlag(t *testing.T) {
	_, _, err := run(t, "", "defaults")
	require.ErrorIs(t, err, errNoShapes)
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		shapes := writeTemp(t, "shapes.yaml", testShapes)

		out, _, err := run(t, "", "validate", "--shapes", shapes)
		require.NoError(t, err)
		assert.Contains(t, out, "2 shape(s)")
	})

	t.Run("unknown shape reference", func(t *testing.T) {
		shapes := writeTemp(t, "shapes.yaml", `shapes:
  - name: Person
    fields:
      address: !shape Adress
  - name: Address
    fields:
      city: ""
`)

		out, _, err := run(t, "", "validate", "--shapes", shapes)
		require.Error(t, err)
		assert.Contains(t, out, "unknown_shape")
		assert.Contains(t, out, "Address")
	})
}

func TestPopulateVerboseKeepsStdoutClean(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	out, errOut, err := run(t, `{"name": "Al"}`, "populate", "--shapes", shapes, "--type", "Person", "--verbose")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Al", got["name"])
	assert.Contains(t, errOut, "loaded 2 shapes from")
	assert.Contains(t, errOut, "populated Person with 3 fields")
}

func TestPopulateNullInput(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	for _, stdin := range []string{"null", "", " \n"} {
		out, _, err := run(t, stdin, "populate", "--shapes", shapes, "--type", "Address")
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, map[string]any{"city": "", "zip": ""}, got)
	}
}

func TestFieldsMappingDefault(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", `shapes:
  - name: Config
    fields:
      labels:
        env: prod
`)

	out, _, err := run(t, "", "fields", "--shapes", shapes)
	require.NoError(t, err)
	assert.Equal(t, "Config (Config)\n  labels = {\"env\": \"prod\"}\n", out)
}

func TestFields(t *testing.T) {
	shapes := writeTemp(t, "shapes.yaml", testShapes)

	out, _, err := run(t, "", "fields", "--shapes", shapes, "--type", "Person")
	require.NoError(t, err)
	assert.Equal(t, `Person (Person)
  name = ""
  age = 0
  address: Address
    city = ""
    zip = ""
`, out)
}
