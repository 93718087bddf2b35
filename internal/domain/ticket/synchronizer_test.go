package ticket

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extinsia/internal/domain/catalog"
)

type stubLookup struct {
	items map[string]catalog.Item
	err   error
	calls []string
}

func (s *stubLookup) FindItemByCode(ctx context.Context, code string) (*catalog.Item, error) {
	s.calls = append(s.calls, code)
	if s.err != nil {
		return nil, s.err
	}
	if item, ok := s.items[code]; ok {
		return &item, nil
	}
	return nil, nil
}

func TestSynchronizerSync_ResolvesInInputOrder(t *testing.T) {
	products := &stubLookup{items: map[string]catalog.Item{
		"PRO-1": {Code: "PRO-1", Name: "Señal De Evacuación", Price: 150},
	}}
	extinguishers := &stubLookup{items: map[string]catalog.Item{
		"EXT-1": {Code: "EXT-1", Name: "Extintor Pqs 6kg", Price: 950},
	}}

	sync := NewSynchronizer(products, extinguishers)

	resolved, err := sync.Sync(context.Background(), []LineItem{
		{Code: "EXT-1", Quantity: 2},
		{Code: "PRO-1", Quantity: 3},
	})

	require.NoError(t, err)
	require.Len(t, resolved, 2)

	assert.Equal(t, "EXT-1", resolved[0].Code())
	assert.Equal(t, "Extintor Pqs 6kg", resolved[0].Name())
	assert.Equal(t, int64(950), resolved[0].UnitPrice())
	assert.Equal(t, 2, resolved[0].Quantity())

	assert.Equal(t, "PRO-1", resolved[1].Code())
	assert.Equal(t, int64(150), resolved[1].UnitPrice())
}

func TestSynchronizerSync_FirstLookupWins(t *testing.T) {
	products := &stubLookup{items: map[string]catalog.Item{
		"X-1": {Code: "X-1", Name: "Producto", Price: 100},
	}}
	extinguishers := &stubLookup{items: map[string]catalog.Item{
		"X-1": {Code: "X-1", Name: "Extintor", Price: 999},
	}}

	sync := NewSynchronizer(products, extinguishers)

	resolved, err := sync.Sync(context.Background(), []LineItem{{Code: "X-1", Quantity: 1}})

	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "Producto", resolved[0].Name())
	assert.Equal(t, int64(100), resolved[0].UnitPrice())
	// The second catalog is never consulted once the first one answers.
	assert.Empty(t, extinguishers.calls)
}

func TestSynchronizerSync_FallsThroughToLaterLookups(t *testing.T) {
	products := &stubLookup{items: map[string]catalog.Item{}}
	extinguishers := &stubLookup{items: map[string]catalog.Item{
		"EXT-9": {Code: "EXT-9", Name: "Extintor Co2", Price: 1200},
	}}

	sync := NewSynchronizer(products, extinguishers)

	resolved, err := sync.Sync(context.Background(), []LineItem{{Code: "EXT-9", Quantity: 1}})

	require.NoError(t, err)
	assert.Equal(t, []string{"EXT-9"}, products.calls)
	assert.Equal(t, "Extintor Co2", resolved[0].Name())
}

func TestSynchronizerSync_UnknownCodeAbortsWhole(t *testing.T) {
	products := &stubLookup{items: map[string]catalog.Item{
		"PRO-1": {Code: "PRO-1", Name: "Señal", Price: 150},
	}}

	sync := NewSynchronizer(products)

	resolved, err := sync.Sync(context.Background(), []LineItem{
		{Code: "PRO-1", Quantity: 1},
		{Code: "ZZZ-404", Quantity: 1},
	})

	require.Error(t, err)
	assert.Nil(t, resolved)

	var notFound *ItemNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "ZZZ-404", notFound.Code)
	assert.Contains(t, err.Error(), `item "ZZZ-404" not found in either catalog`)
}

func TestSynchronizerSync_LookupErrorIsNotANotFound(t *testing.T) {
	broken := &stubLookup{err: errors.New("table locked")}

	sync := NewSynchronizer(broken)

	_, err := sync.Sync(context.Background(), []LineItem{{Code: "PRO-1", Quantity: 1}})

	require.Error(t, err)
	var notFound *ItemNotFoundError
	assert.False(t, errors.As(err, &notFound))
	assert.Contains(t, err.Error(), "table locked")
}

func TestSynchronizerSync_EmptyCart(t *testing.T) {
	sync := NewSynchronizer()

	resolved, err := sync.Sync(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, resolved)
}
