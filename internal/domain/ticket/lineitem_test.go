package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineItemValidate(t *testing.T) {
	tests := []struct {
		name          string
		item          LineItem
		expectedError string
	}{
		{name: "valid", item: LineItem{Code: "PRO-1", Quantity: 1}},
		{name: "large quantity", item: LineItem{Code: "EXT-2", Quantity: 500}},
		{
			name:          "missing code",
			item:          LineItem{Code: "", Quantity: 1},
			expectedError: "item code is required",
		},
		{
			name:          "zero quantity",
			item:          LineItem{Code: "PRO-1", Quantity: 0},
			expectedError: "item quantity must be an integer greater than 0",
		},
		{
			name:          "negative quantity",
			item:          LineItem{Code: "PRO-1", Quantity: -3},
			expectedError: "item quantity must be an integer greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			}
		})
	}
}

func TestValidateCart(t *testing.T) {
	t.Run("empty cart rejected", func(t *testing.T) {
		err := ValidateCart(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "a ticket must include at least one item")
	})

	t.Run("first invalid entry reported", func(t *testing.T) {
		err := ValidateCart([]LineItem{
			{Code: "PRO-1", Quantity: 1},
			{Code: "", Quantity: 2},
			{Code: "PRO-2", Quantity: 0},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "item code is required")
	})

	t.Run("all valid", func(t *testing.T) {
		err := ValidateCart([]LineItem{
			{Code: "PRO-1", Quantity: 1},
			{Code: "EXT-1", Quantity: 2},
		})
		assert.NoError(t, err)
	})
}

func TestReconstructResolvedItem(t *testing.T) {
	item, err := ReconstructResolvedItem("EXT-1", "Extintor Pqs 6kg", 950, 3)
	require.NoError(t, err)
	assert.Equal(t, "EXT-1", item.Code())
	assert.Equal(t, "Extintor Pqs 6kg", item.Name())
	assert.Equal(t, int64(950), item.UnitPrice())
	assert.Equal(t, 3, item.Quantity())
	assert.Equal(t, int64(2850), item.Subtotal())

	_, err = ReconstructResolvedItem("", "Extintor", 950, 1)
	assert.Error(t, err)

	_, err = ReconstructResolvedItem("EXT-1", "Extintor", 950, 0)
	assert.Error(t, err)
}

func TestTotal(t *testing.T) {
	mustItem := func(code string, price int64, qty int) ResolvedItem {
		item, err := ReconstructResolvedItem(code, "x", price, qty)
		require.NoError(t, err)
		return item
	}

	tests := []struct {
		name     string
		items    []ResolvedItem
		expected int64
	}{
		{name: "empty list", items: nil, expected: 0},
		{
			name:     "single line",
			items:    []ResolvedItem{mustItem("A", 950, 2)},
			expected: 1900,
		},
		{
			name: "sum of subtotals",
			items: []ResolvedItem{
				mustItem("A", 950, 2),
				mustItem("B", 150, 3),
				mustItem("C", 800, 1),
			},
			expected: 2*950 + 3*150 + 800,
		},
		{
			name:     "free item contributes zero",
			items:    []ResolvedItem{mustItem("A", 0, 10)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Total(tt.items))
		})
	}
}
