package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchLocalitiesQuery(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"localidades":[{"id":2,"nombre":"Rosario","provincia":"Santa Fe","codigo_postal":"2000"}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	localities, err := c.SearchLocalities(context.Background(), "rosa")
	require.NoError(t, err)

	assert.Equal(t, "/calculator/localidades", gotPath)
	assert.Contains(t, gotQuery, "q=rosa")
	assert.Contains(t, gotQuery, "atendida=1")
	assert.Equal(t, "Bearer tok-123", gotAuth)

	require.Len(t, localities, 1)
	assert.Equal(t, "Rosario", localities[0].Name)
	assert.Equal(t, "2000", localities[0].PostalCode)
}

func TestRequestQuoteBody(t *testing.T) {
	var got QuoteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"data":{"cotizacion_web":[{"id":1,"precio":950.5}]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	options, err := c.RequestQuote(context.Background(), QuoteRequest{
		OriginPostal:      "5600",
		DestinationPostal: "2000",
		AgreementID:       1,
		ArticulosID:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, "5600", got.OriginPostal)
	assert.Equal(t, "2000", got.DestinationPostal)
	assert.Equal(t, int64(2), got.ArticulosID)

	require.Len(t, options, 1)
	assert.Equal(t, 950.5, options[0].Price)
}

func TestStatusErrorCarriesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"El CUIT no es válido"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.CreatePreorder(context.Background(), CreateOrderRequest{})
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.Code)
	assert.Equal(t, "El CUIT no es válido", se.Message)
	assert.Equal(t, "El CUIT no es válido", UserMessage(err))
}

func TestStatusErrorUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.ListPreorders(context.Background(), "", 1, 10)
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Empty(t, se.Message)
	assert.Equal(t, MsgGeneric, UserMessage(err))
}

func TestUserMessageTable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"connection refused", errors.New(`dial tcp: connection refused`), MsgConnectivity},
		{"dns", errors.New("lookup api: no such host"), MsgConnectivity},
		{"timeout", errors.New("context deadline exceeded"), MsgConnectivity},
		{"other", errors.New("something odd"), MsgGeneric},
		{"status with message", &StatusError{Code: 400, Message: "Faltan datos"}, "Faltan datos"},
		{"status without message", &StatusError{Code: 500}, MsgGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UserMessage(tc.err))
		})
	}
}

func TestCreatePreorderNotRetried(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	_, err := c.CreatePreorder(context.Background(), CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, 1, hits)
}

func TestPreorderPDFBlob(t *testing.T) {
	blob := []byte("%PDF-1.4 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voucher/preorders/7/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(blob)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	got, err := c.PreorderPDF(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}
