package categories

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/expense-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, f string) (string, error) {
	t.Helper()
	format = f
	t.Cleanup(func() { format = "text" })

	var out bytes.Buffer
	Cmd.SetOut(&out)
	err := categoriesFunc(Cmd, nil)
	return out.String(), err
}

func TestCategoriesFunc_Text(t *testing.T) {
	out, err := run(t, "text")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "Food: starbucks, restaurant"))
	assert.True(t, strings.HasPrefix(lines[1], "Transport: uber"))
	assert.Equal(t, "Other: no keyword matched", lines[7])
}

func TestCategoriesFunc_YAML(t *testing.T) {
	out, err := run(t, "yaml")
	require.NoError(t, err)

	var doc models.CategoriesConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Categories, 6)
	assert.Equal(t, models.CategoryUtilities, doc.Categories[4].Name)
	assert.Contains(t, doc.Categories[4].Keywords, "gas bill")
}

func TestCategoriesFunc_UnsupportedFormat(t *testing.T) {
	_, err := run(t, "xml")
	assert.Error(t, err)
}
