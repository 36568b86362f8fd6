package dispatch

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/joeydtaylor/ncpbridge/pkg/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tbl(pairs ...any) Table[int, string] {
	var t Table[int, string]
	for i := 0; i < len(pairs); i += 2 {
		t = append(t, Entry[int, string]{Key: pairs[i].(int), Handler: pairs[i+1].(string)})
	}
	return t
}

func TestLookupThreeEntries(t *testing.T) {
	table := tbl(1, "A", 5, "B", 9, "C")
	require.True(t, table.IsSorted())

	cases := []struct {
		key  int
		want string
		ok   bool
	}{
		{1, "A", true},
		{5, "B", true},
		{9, "C", true},
		{0, "", false},
		{4, "", false},
		{6, "", false},
		{10, "", false},
	}
	for _, tc := range cases {
		h, ok := table.Lookup(tc.key)
		assert.Equal(t, tc.ok, ok, "key %d", tc.key)
		assert.Equal(t, tc.want, h, "key %d", tc.key)
	}
}

func TestLookupSingleEntry(t *testing.T) {
	table := tbl(7, "Z")
	h, ok := table.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "Z", h)

	_, ok = table.Lookup(8)
	assert.False(t, ok)
	_, ok = table.Lookup(6)
	assert.False(t, ok)
}

func TestLookupEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Table[int, string](nil).Lookup(1) })
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Table[int, string](nil).Validate())
	assert.NoError(t, tbl(3, "x").Validate())

	err := tbl(1, "A", 9, "C", 5, "B").Validate()
	var oe *OrderError[int]
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 2, oe.Index)
	assert.Equal(t, 9, oe.Prev)
	assert.Equal(t, 5, oe.Key)
	assert.Contains(t, err.Error(), "index 2")

	err = tbl(1, "A", 5, "B", 5, "B2").Validate()
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 2, oe.Index)
	assert.Contains(t, err.Error(), "duplicate key 5")
	assert.False(t, tbl(2, "a", 2, "b").IsSorted())
}

func TestMustTable(t *testing.T) {
	assert.NotPanics(t, func() {
		MustTable(Entry[int, string]{1, "a"}, Entry[int, string]{2, "b"})
	})
	assert.Panics(t, func() {
		MustTable(Entry[int, string]{2, "a"}, Entry[int, string]{1, "b"})
	})
}

func TestSearchComparisonBound(t *testing.T) {
	for n := 1; n <= 300; n++ {
		table := make(Table[int, string], n)
		for i := range table {
			table[i] = Entry[int, string]{Key: 2 * i, Handler: "h"}
		}
		bound := int(math.Ceil(math.Log2(float64(n))))
		for key := -1; key <= 2*n; key++ {
			i, probes := table.search(key)
			require.LessOrEqual(t, probes, bound, "n=%d key=%d", n, key)

			_, ok := table.Lookup(key)
			assert.Equal(t, key >= 0 && key%2 == 0 && key < 2*n, ok, "n=%d key=%d", n, key)
			if ok {
				assert.Equal(t, key, table[i].Key)
			}
		}
	}
}

func TestLookupRandomTables(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 200; round++ {
		n := 1 + rng.IntN(300)
		present := map[uint32]bool{}
		var table Table[uint32, uint32]
		k := uint32(0)
		for i := 0; i < n; i++ {
			k += 1 + uint32(rng.IntN(40))
			table = append(table, Entry[uint32, uint32]{Key: k, Handler: k * 3})
			present[k] = true
		}
		require.True(t, table.IsSorted())
		for probe := uint32(0); probe <= k+1; probe++ {
			h, ok := table.Lookup(probe)
			require.Equal(t, present[probe], ok)
			if ok {
				require.Equal(t, probe*3, h)
			}
		}
	}
}

var testCatalogue = []Decl[int]{
	{Key: 1, Get: feature.Always},
	{Key: 3, Get: feature.Always, Set: feature.FTD, Insert: feature.All(feature.FTD, feature.Commissioner)},
	{Key: 5, Remove: feature.FTD},
	{Key: 8, Get: feature.Any(feature.FTD, feature.MTD), Insert: feature.Always, Remove: feature.Always},
}

func bindName(v Verb, key int) (string, bool) {
	return v.String() + ":" + string(rune('0'+key)), true
}

func TestRegistryGating(t *testing.T) {
	ftd := MustRegistry(testCatalogue, feature.Of(feature.FTD, feature.Commissioner), bindName)
	mtd := MustRegistry(testCatalogue, feature.Of(feature.MTD), bindName)

	h, ok := ftd.FindInsert(3)
	assert.True(t, ok)
	assert.Equal(t, "insert:3", h)

	_, ok = mtd.FindInsert(3)
	assert.False(t, ok)
	_, ok = mtd.FindSet(3)
	assert.False(t, ok)

	h, ok = ftd.FindRemove(5)
	assert.True(t, ok)
	assert.Equal(t, "remove:5", h)
	_, ok = ftd.FindInsert(5)
	assert.False(t, ok, "remove-only key must not appear under insert")

	h, ok = mtd.FindGet(8)
	assert.True(t, ok)
	assert.Equal(t, "get:8", h)

	assert.Equal(t, [NumVerbs]int{3, 1, 2, 2}, ftd.Sizes())
	assert.Equal(t, [NumVerbs]int{3, 0, 1, 1}, mtd.Sizes())
	assert.Equal(t, []Verb{Get, Set, Insert}, ftd.Verbs(3))
	assert.Equal(t, feature.Of(feature.MTD), mtd.Features())
}

func TestRegistryEmptyTableGuard(t *testing.T) {
	r := MustRegistry(testCatalogue, feature.Of(feature.Radio), bindName)
	assert.Empty(t, r.Table(Set))
	assert.NotPanics(t, func() {
		_, ok := r.FindSet(3)
		assert.False(t, ok)
	})
	_, ok := r.Find(Verb(9), 1)
	assert.False(t, ok)
	assert.Nil(t, r.Table(Verb(9)))
}

func TestRegistryRejectsUnsortedCatalogue(t *testing.T) {
	bad := []Decl[int]{
		{Key: 4, Get: feature.Always},
		{Key: 2, Get: feature.Always},
	}
	_, err := NewRegistry(bad, feature.Of(feature.FTD), bindName)
	var oe *OrderError[int]
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, 1, oe.Index)

	assert.Panics(t, func() { MustRegistry(bad, feature.Of(feature.FTD), bindName) })

	dup := []Decl[int]{{Key: 2, Get: feature.Always}, {Key: 2, Set: feature.Always}}
	_, err = NewRegistry(dup, feature.Of(feature.FTD), bindName)
	assert.ErrorContains(t, err, "duplicate key 2")
}

func TestBuildUnsortedIsNotResorted(t *testing.T) {
	bad := []Decl[int]{
		{Key: 9, Get: feature.Always},
		{Key: 1, Get: feature.Always},
	}
	_, err := Build(Get, bad, feature.Of(feature.FTD), bindName)
	assert.Error(t, err)

	// filtered-out entries do not participate
	tab, err := Build(Set, bad, feature.Of(feature.FTD), bindName)
	require.NoError(t, err)
	assert.Empty(t, tab)
}

func TestBuildMissingHandler(t *testing.T) {
	none := func(Verb, int) (string, bool) { return "", false }
	_, err := Build(Get, testCatalogue, feature.Of(feature.FTD), none)
	assert.ErrorContains(t, err, "no handler")

	_, err = Build(Verb(7), testCatalogue, feature.Of(feature.FTD), bindName)
	assert.Error(t, err)
}

func TestFromTables(t *testing.T) {
	r, err := FromTables([NumVerbs]Table[int, string]{
		Get:    tbl(1, "A", 5, "B", 9, "C"),
		Remove: tbl(7, "Z"),
	}, feature.Of(feature.MTD))
	require.NoError(t, err)
	assert.Equal(t, feature.Of(feature.MTD), r.Features())
	h, ok := r.FindGet(5)
	assert.True(t, ok)
	assert.Equal(t, "B", h)
	_, ok = r.FindSet(5)
	assert.False(t, ok)
	h, ok = r.FindRemove(7)
	assert.True(t, ok)
	assert.Equal(t, "Z", h)

	_, err = FromTables([NumVerbs]Table[int, string]{Insert: tbl(2, "a", 1, "b")}, 0)
	assert.ErrorContains(t, err, "insert table")
}

func TestRegistryTablesAreCopies(t *testing.T) {
	src := [NumVerbs]Table[int, string]{Get: tbl(1, "A", 5, "B", 9, "C")}
	r, err := FromTables(src, feature.Of(feature.FTD))
	require.NoError(t, err)

	src[Get][1].Key = 100
	h, ok := r.FindGet(5)
	assert.True(t, ok)
	assert.Equal(t, "B", h)

	out := r.Table(Get)
	out[0], out[2] = out[2], out[0]
	h, ok = r.FindGet(9)
	assert.True(t, ok)
	assert.Equal(t, "C", h)
	assert.True(t, r.Table(Get).IsSorted())

	built := MustRegistry(testCatalogue, feature.Of(feature.FTD), bindName)
	got := built.Table(Get)
	for i := range got {
		got[i].Key = -i
	}
	_, ok = built.FindGet(3)
	assert.True(t, ok)
}

func TestVerbNames(t *testing.T) {
	for _, v := range Verbs() {
		got, err := ParseVerb(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	_, err := ParseVerb("patch")
	assert.Error(t, err)
	assert.Equal(t, "verb(9)", Verb(9).String())
}
