package web

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_DefinesEveryView(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"header", "footer",
		"home/index", "home/privacy", "home/error",
		"seller/index", "seller/details", "seller/form", "seller/delete",
		"department/index", "department/details", "department/form", "department/delete",
	} {
		assert.NotNil(t, tmpl.Lookup(name), "missing view %s", name)
	}
}

func TestFuncs(t *testing.T) {
	formatDate := Funcs["formatDate"].(func(time.Time) string)
	formatMoney := Funcs["formatMoney"].(func(float64) string)

	assert.Equal(t, "21/04/1998", formatDate(time.Date(1998, time.April, 21, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", formatDate(time.Time{}))
	assert.Equal(t, "3500.00", formatMoney(3500))
	assert.Equal(t, "2200.50", formatMoney(2200.5))
}

func TestTemplates_RenderHomeIndex(t *testing.T) {
	tmpl := MustTemplates()

	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "home/index", map[string]string{
		"Title":   "Home Page",
		"Message": "Welcome",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>Home Page - SalesWebMvc</title>")
	assert.Contains(t, buf.String(), "Welcome")
}

func TestStatic_ServesStylesheet(t *testing.T) {
	f, err := Static().Open("/css/site.css")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "field-error")
}
