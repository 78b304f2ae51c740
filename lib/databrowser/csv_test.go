package databrowser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableFromCSV(t *testing.T) {
	body := []byte(
		"activity_year,lei,state_code,action_taken\n" +
			"2019,ABC123,DC,5\n" +
			"2019,\"DEF,456\",DC,5\n",
	)

	result, err := tableFromCSV(body)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"activity_year", "lei", "state_code", "action_taken"}, result.Columns)
	require.Equal(t, 2, result.NumRows())
	require.Equal(t, "DEF,456", result.Rows[1][1])
}

func TestTableFromCSVHeaderOnly(t *testing.T) {
	result, err := tableFromCSV([]byte("activity_year,lei\n"))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 2, result.NumColumns())
	require.Equal(t, 0, result.NumRows())
}

func TestTableFromCSVMalformed(t *testing.T) {
	var parseErr *ParseError

	// empty body is not a silent empty table
	_, err := tableFromCSV(nil)
	require.True(t, errors.As(err, &parseErr))

	// truncated record
	_, err = tableFromCSV([]byte("a,b,c\n1,2\n"))
	require.True(t, errors.As(err, &parseErr))

	// unterminated quote
	_, err = tableFromCSV([]byte("a,b\n1,\"oops\n"))
	require.True(t, errors.As(err, &parseErr))
}
