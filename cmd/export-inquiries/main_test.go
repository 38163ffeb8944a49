package main

import (
	"consulting_site_go/models"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbook(t *testing.T) {
	inquiries := []models.Inquiry{
		{
			CreatedAt:   time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
			FullName:    "Jane Doe",
			Email:       "jane@example.com",
			Company:     "Acme Ltd",
			Budget:      models.Budget25To100k,
			Region:      "UK",
			GDPRConsent: true,
			Message:     "We would like to discuss a growth plan.",
		},
		{
			CreatedAt: time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC),
			FullName:  "John Smith",
			Email:     "john@example.com",
			Message:   "Pricing for Jersey please.",
		},
	}

	f, err := buildWorkbook(inquiries)
	require.NoError(t, err)
	defer f.Close()

	path := filepath.Join(t.TempDir(), "inquiries.xlsx")
	require.NoError(t, f.SaveAs(path))

	saved, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer saved.Close()

	rows, err := saved.GetRows("Inquiries")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "2025-03-01 09:30", rows[1][0])
	assert.Equal(t, "Jane Doe", rows[1][1])
	assert.Equal(t, "25-100k", rows[1][5])
	assert.Equal(t, "TRUE", rows[1][7])
	assert.Equal(t, "We would like to discuss a growth plan.", rows[1][8])
	assert.Equal(t, "John Smith", rows[2][1])
}
