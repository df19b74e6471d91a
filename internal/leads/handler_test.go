package leads

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, field, contents string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "leads.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/leads/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandler_Upload(t *testing.T) {
	store := NewStore()
	handler := NewHandler(store, nil)

	csv := "co_name,website,email\nAcme,acme.example,jane@acme.example\n"
	rec := httptest.NewRecorder()
	handler.Upload(rec, uploadRequest(t, "file", csv))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UploadResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Count)

	table, err := store.Table()
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestHandler_UploadMissingFile(t *testing.T) {
	handler := NewHandler(NewStore(), nil)

	rec := httptest.NewRecorder()
	handler.Upload(rec, uploadRequest(t, "wrong_field", "co_name\nAcme\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UploadEmptyFile(t *testing.T) {
	store := NewStore()
	handler := NewHandler(store, nil)

	rec := httptest.NewRecorder()
	handler.Upload(rec, uploadRequest(t, "file", "co_name,email\n"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	_, err := store.Table()
	assert.ErrorIs(t, err, ErrNoTable, "failed upload must not replace the table")
}

func TestHandler_List(t *testing.T) {
	store := NewStore()
	rows := make([]Lead, 7)
	for i := range rows {
		rows[i] = Lead{Company: "Acme", Email: "jane@acme.example"}
	}
	store.Replace(&Table{rows: rows})

	handler := NewHandler(store, nil)
	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 7, resp.Count)
	assert.Len(t, resp.Preview, 5)
}

func TestHandler_ListNoTable(t *testing.T) {
	handler := NewHandler(NewStore(), nil)

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/leads", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
