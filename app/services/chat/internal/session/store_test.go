package session

import (
	"context"
	"testing"

	"lourini/app/services/chat/internal/bot/catalog"
	"lourini/app/services/chat/internal/bot/dialog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopSubmitter struct{}

func (noopSubmitter) Submit(context.Context, *dialog.OrderPayload) (*dialog.OrderRef, error) {
	return &dialog.OrderRef{Id: 1, OrderNumber: "ORD-1"}, nil
}

func TestStore(t *testing.T) {
	s := NewStore()
	assert.Equal(t, 0, s.Len())

	_, ok := s.Get("missing")
	assert.False(t, ok)

	cat := &catalog.Catalog{Categories: []catalog.Category{
		{Id: "cadeiras", Name: "Cadeiras", Products: []catalog.Product{
			{Id: "c1", Name: "Cadeira Dining", Price: 180},
		}},
	}}
	conv := dialog.New(cat, noopSubmitter{})
	s.Put("abc", conv)

	got, ok := s.Get("abc")
	require.True(t, ok)
	assert.Same(t, conv, got)
	assert.Equal(t, 1, s.Len())
}
