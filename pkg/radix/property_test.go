package radix

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestInsertOrderIndependence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfNDistinct(rapid.StringMatching(`[abcא-ג]{1,8}`), 1, 40, rapid.ID[string]).Draw(t, "keys")
		order := rapid.Permutation(keys).Draw(t, "order")

		d := New[string]()
		for _, k := range order {
			d.Insert(k, k)
		}
		if d.Len() != len(keys) {
			t.Fatalf("expected %d keys, got %d", len(keys), d.Len())
		}
		for _, k := range keys {
			v, ok := d.Lookup(k)
			if !ok || v != k {
				t.Fatalf("lookup %q: got %q, %v", k, v, ok)
			}
		}

		got := d.Keys()
		want := slices.Clone(keys)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("enumeration %v, expected %v", got, want)
		}
	})
}

func TestExactHitsAreTolerantHits(t *testing.T) {
	rules := []ToleranceRule{skipRune{'x', 0.5}, insertRune{'y', 0.8}}
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfN(rapid.StringMatching(`[abxy]{1,6}`), 1, 30).Draw(t, "keys")
		query := rapid.StringMatching(`[abxy]{1,6}`).Draw(t, "query")

		d := New[int]()
		for i, k := range keys {
			d.Insert(k, i)
		}

		results := d.LookupTolerant(query, rules...)
		for _, r := range results {
			if r.Score > 1.0 || r.Score <= 0 {
				t.Fatalf("score %v out of range for %q", r.Score, r.Word)
			}
			if r.Score == 1.0 && r.Word != query {
				t.Fatalf("untolerated match %q for query %q", r.Word, query)
			}
		}

		if v, ok := d.Lookup(query); ok {
			found := slices.ContainsFunc(results, func(r LookupResult[int]) bool {
				return r.Word == query && r.Value == v && r.Score == 1.0
			})
			if !found {
				t.Fatalf("exact hit %q missing from tolerant results %v", query, results)
			}
		}
	})
}
