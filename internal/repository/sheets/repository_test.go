package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/mamadbah2/kolamku/internal/config"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *GoogleSheetRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo, err := NewGoogleSheetRepository(context.Background(),
		config.SheetsConfig{SpreadsheetID: "sheet-1"}, nil,
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return repo
}

func TestReadRange(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.Contains(r.URL.Path, "/spreadsheets/sheet-1/values/"))
		assert.Equal(t, "UNFORMATTED_VALUE", r.URL.Query().Get("valueRenderOption"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Harga!A1:C2","values":[["2026-01-05","pakan",11500],["2026-01-12","pakan",11800]]}`))
	})

	rows, err := repo.ReadRange(context.Background(), "Harga!A:C")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "pakan", rows[0][1])
	assert.EqualValues(t, 11800, rows[1][2])
}

func TestWriteRow(t *testing.T) {
	var body struct {
		Values [][]interface{} `json:"values"`
	}
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":append"))
		assert.Equal(t, "USER_ENTERED", r.URL.Query().Get("valueInputOption"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-1"}`))
	})

	err := repo.WriteRow(context.Background(), "Harga!A:C", []interface{}{"2026-01-19", "pakan", 12000})
	require.NoError(t, err)
	require.Len(t, body.Values, 1)
	assert.Equal(t, []interface{}{"2026-01-19", "pakan", float64(12000)}, body.Values[0])
}

func TestEmptyRangeRejected(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})

	_, err := repo.ReadRange(context.Background(), "")
	assert.Error(t, err)
	assert.Error(t, repo.WriteRow(context.Background(), "", nil))
}

func TestRequiresSpreadsheetID(t *testing.T) {
	_, err := NewGoogleSheetRepository(context.Background(), config.SheetsConfig{}, nil, option.WithoutAuthentication())
	assert.Error(t, err)
}
