package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstitutionsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json")
		w.Write([]byte(`{"institutions": [{"lei": "ABC123", "name": "First Example Bank"}]}`))
	}))
	defer server.Close()

	rootCmd.SetArgs([]string{
		"institutions",
		"--year", "2020",
		"--state", "dc",
		"--base-url", server.URL,
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	require.NotNil(t, client)

	// shutdown is safe whether or not telemetry config was found
	require.NoError(t, tel.Shutdown(context.Background()))
}
