package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"text/tabwriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentaride/rentaride/internal/domain/model"
)

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"register", "login", "logout", "whoami", "profile",
		"cars", "bookings", "reviews", "users", "dashboard",
	}
	got := make(map[string]bool)
	for _, cmd := range root.Commands() {
		got[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, got[name], "missing command %q", name)
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("api"))
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))
}

func TestRenderList_Table(t *testing.T) {
	var buf bytes.Buffer
	cars := []model.Car{{ID: 1, Brand: "Kia", Model: "Rio"}}

	err := renderList(&buf, "", cars, func(tw *tabwriter.Writer) {
		for _, c := range cars {
			_, _ = tw.Write([]byte(c.Brand + "\t" + c.Model + "\n"))
		}
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Kia")
	assert.Contains(t, buf.String(), "Rio")
}

func TestRenderList_QueryOutputsJSON(t *testing.T) {
	var buf bytes.Buffer
	cars := []model.Car{
		{ID: 1, Model: "Rio", Status: model.CarAvailable},
		{ID: 2, Model: "Corolla", Status: model.CarBooked},
	}

	err := renderList(&buf, "[?status=='available'].model", cars, func(*tabwriter.Writer) {
		t.Fatal("table renderer must not run when --query is set")
	})
	require.NoError(t, err)

	var out []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []string{"Rio"}, out)
}

func TestRenderList_BadQuery(t *testing.T) {
	var buf bytes.Buffer
	err := renderList(&buf, "[?", []model.Car{}, func(*tabwriter.Writer) {})
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, map[string]int{"cars": 3}))
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"cars": 3`)
}
