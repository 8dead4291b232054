package outwriter

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/hellperdev/contactbook/internal/contract"
	"github.com/hellperdev/contactbook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVContacts(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
	contacts := []schema.Contact{
		{ID: "1", Name: "Ann", PhoneNumber: "+1", CreatedAt: &created},
		{ID: "2", Name: "Bob", PhoneNumber: "+2"},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVContacts(w, contacts))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "name", "phone_number", "created_at"}, records[0])
	assert.Equal(t, []string{"1", "Ann", "+1", "2026-02-01"}, records[1])
	assert.Equal(t, []string{"2", "Bob", "+2", ""}, records[2])
}

func TestGetMaxTableNameWidth(t *testing.T) {
	testCases := []struct {
		name  string
		width int
		want  int
	}{
		{"explicit wide terminal caps at max", 200, 60},
		{"explicit narrow terminal floors at min", 40, 15},
		{"mid-size terminal", 100, 55},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &contract.Config{Width: tc.width}
			assert.Equal(t, tc.want, GetMaxTableNameWidth(cfg))
		})
	}
}

func TestFormatCreatedAt(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-02-01", formatCreatedAt(&schema.Contact{CreatedAt: &created}))
	assert.Empty(t, formatCreatedAt(&schema.Contact{}))
}
