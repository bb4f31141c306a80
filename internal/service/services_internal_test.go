package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []uint
		want []uint
	}{
		{"nil", nil, []uint{}},
		{"keeps order", []uint{3, 1, 2}, []uint{3, 1, 2}},
		{"drops duplicates", []uint{2, 2, 1, 2}, []uint{2, 1}},
		{"drops zero", []uint{0, 4, 0}, []uint{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uniqueIDs(tt.in))
		})
	}
}

func TestPageDefaults(t *testing.T) {
	p := pageDefaults{pageSize: 25, topN: 5}
	assert.Equal(t, 7, p.limit(7))
	assert.Equal(t, 25, p.limit(0))
	assert.Equal(t, 25, p.limit(-1))
	assert.Equal(t, 3, p.top(3))
	assert.Equal(t, 5, p.top(0))

	var empty pageDefaults
	assert.Equal(t, 100, empty.limit(0))
	assert.Equal(t, 10, empty.top(0))
}
