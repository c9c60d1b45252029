package oteladapters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log"
)

func Test_KeyValues_KeepsTypes(t *testing.T) {
	// act
	kvs := keyValues([]any{
		"book_id", "b-1",
		"borrowed", true,
		"attempts", 2,
		"rows", int64(7),
		"version", uint(3),
		"duration_ms", 1.5,
		"error", errors.New("boom"),
		"state", struct{ Name string }{Name: "on_loan"},
	})

	// assert
	want := []log.KeyValue{
		log.String("book_id", "b-1"),
		log.Bool("borrowed", true),
		log.Int("attempts", 2),
		log.Int64("rows", 7),
		log.Int64("version", 3),
		log.Float64("duration_ms", 1.5),
		log.String("error", "boom"),
	}

	assert.Len(t, kvs, len(want)+1)
	for i, kv := range want {
		assert.True(t, kv.Equal(kvs[i]), "attribute %s should keep its value and type, got %s", kv.Key, kvs[i].Value)
	}
	assert.Equal(t, "state", kvs[7].Key)
	assert.Equal(t, log.KindString, kvs[7].Value.Kind())
}

func Test_KeyValues_DropsIncompletePairs(t *testing.T) {
	testCases := []struct {
		name     string
		args     []any
		wantKeys []string
	}{
		{name: "no args", args: nil, wantKeys: []string{}},
		{name: "dangling key", args: []any{"a", 1, "b"}, wantKeys: []string{"a"}},
		{name: "non-string key", args: []any{42, "x", "c", 3}, wantKeys: []string{"c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kvs := keyValues(tc.args)

			keys := make([]string, 0, len(kvs))
			for _, kv := range kvs {
				keys = append(keys, kv.Key)
			}
			assert.Equal(t, tc.wantKeys, keys)
		})
	}
}
