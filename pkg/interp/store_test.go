package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251208-go-pkg-interp/pkg/interp"
)

func TestStore_Mutations(t *testing.T) {
	s := interp.NewStore(map[string]any{"a": 1})

	s.Add(nil).Add(map[string]any{"a": 2, "b": "x"})
	v, ok := s.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 2, v, "add overwrites on collision")
	assert.Equal(t, 2, s.Len())

	s.Delete("b", "missing")
	_, ok = s.Lookup("b")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	s.Set(map[string]any{"c": 3})
	_, ok = s.Lookup("a")
	assert.False(t, ok, "set replaces all contents")
	assert.Equal(t, 1, s.Len())

	s.Set(nil)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ZeroValue(t *testing.T) {
	var s interp.Store
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot().Keys())

	s.Add(map[string]any{"NAME": "zs"}).Delete("missing")
	v, ok := s.Lookup("NAME")
	require.True(t, ok)
	assert.Equal(t, "zs", v)

	var other interp.Store
	other.Set(map[string]any{"ID": 1})
	clone := other.Clone().Add(map[string]any{"x": 2})
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, 1, other.Len())

	got, err := interp.Parse("${NAME}", &s, interp.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "zs", got)
}

func TestStore_Sources(t *testing.T) {
	s := interp.NewStore().AddFrom(
		interp.TupleOf("zs", 123456, "extra").Alias("NAME", "ID"),
		nil,
		interp.TupleOf(),
		interp.Vars{"age": 20},
	)

	assert.Equal(t, []string{"ID", "NAME", "age"}, s.Snapshot().Keys())

	s.SetFrom(interp.TupleOf(1).Alias("x", "y"))
	assert.Equal(t, []string{"x"}, s.Snapshot().Keys())
}

func TestStore_AddStruct(t *testing.T) {
	type database struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	type settings struct {
		Name string   `json:"name"`
		DB   database `json:"db"`
	}

	s, err := interp.NewStore().AddStruct(settings{Name: "app", DB: database{Host: "localhost", Port: 5432}})
	require.NoError(t, err)

	out, err := interp.WithStore(s).Parse("${name}@${db.host}:${db.port}")
	require.NoError(t, err)
	assert.Equal(t, "app@localhost:5432", out)

	_, err = s.AddStruct(map[string]any{"server": map[string]any{"addr": ":80"}})
	require.NoError(t, err)
	v, ok := s.Lookup("server.addr")
	require.True(t, ok)
	assert.Equal(t, ":80", v)

	_, err = s.AddStruct(nil)
	require.NoError(t, err)
}

func TestStore_Clone(t *testing.T) {
	s := interp.NewStore(map[string]any{"a": 1})
	c := s.Clone()
	c.Add(map[string]any{"b": 2})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestView_LiveAndReadOnly(t *testing.T) {
	s := interp.NewStore()
	view := s.Snapshot()
	assert.Equal(t, 0, view.Len())

	s.Add(map[string]any{"age": 20})
	v, ok := view.Get("age")
	require.True(t, ok, "snapshot observes later mutations")
	assert.Equal(t, 20, v)

	require.ErrorIs(t, view.Put("new_value", "1"), interp.ErrUnsupportedMutation)
	require.ErrorIs(t, view.Delete("age"), interp.ErrUnsupportedMutation)
	require.ErrorIs(t, view.Clear(), interp.ErrUnsupportedMutation)
	assert.Equal(t, 1, s.Len(), "failed mutation leaves store intact")

	copied := view.Map()
	copied["other"] = true
	_, ok = view.Get("other")
	assert.False(t, ok, "Map returns a copy")

	s.Delete("age")
	assert.Equal(t, 0, view.Len())
}

func TestView_String(t *testing.T) {
	ip := interp.OfSources([]interp.Source{
		interp.TupleOf("zs", 123456).Alias("NAME", "ID"),
		interp.TupleOf(20, "tom", 190.5).Alias("age", "nickName", "height"),
	})

	assert.Equal(t, "zs==20==tom==123456==190.5", ip.MustParse("${NAME}==${age}==${nickName}==${ID}==${height}"))
	assert.Equal(t, "{ID=123456, NAME=zs, age=20, height=190.5, nickName=tom}", ip.Values().String())
}

func TestView_All(t *testing.T) {
	s := interp.NewStore(map[string]any{"b": 2, "a": 1, "c": 3})

	var keys []string
	for key := range s.Snapshot().All() {
		keys = append(keys, key)
		if key == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestFlatten(t *testing.T) {
	got := interp.Flatten(map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": "x",
		},
		"e":     []any{1, 2},
		"empty": map[string]any{},
	})

	assert.Equal(t, map[string]any{
		"a.b.c": 1,
		"a.d":   "x",
		"e":     []any{1, 2},
		"empty": map[string]any{},
	}, got)
}
