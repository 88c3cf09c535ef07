package identified

import (
	"encoding/json"
	"slices"
	"testing"
)

type user struct {
	UserID int    `json:"id"`
	Name   string `json:"name"`
}

func (u user) ID() int { return u.UserID }

func TestOfUniqueUsesIDMethod(t *testing.T) {
	users := OfUnique(
		user{42, "Satoshi"},
		user{1337, "Leia"},
	)
	if users.Len() != 2 {
		t.Fatalf("len = %d", users.Len())
	}
	u, ok := users.Get(1337)
	if !ok || u.Name != "Leia" {
		t.Fatalf("Get(1337) = (%+v, %v)", u, ok)
	}
}

func TestOfUpdateOrInsert(t *testing.T) {
	users := NewOf[int, user]()

	_, replaced, index := users.UpdateOrInsert(user{42, "X"}, 0)
	if replaced || index != 0 {
		t.Fatalf("first UpdateOrInsert = (replaced=%v, %d)", replaced, index)
	}

	// Push id 42 away from position 0.
	users.Insert(user{7, "Zeta"}, 0)

	prev, replaced, index := users.UpdateOrInsert(user{42, "Y"}, 0)
	if !replaced || prev.Name != "X" {
		t.Fatalf("second UpdateOrInsert = (%+v, %v)", prev, replaced)
	}
	// The existing index wins over the requested one.
	if index != 1 {
		t.Fatalf("index = %d, want 1", index)
	}
}

func TestOfCombining(t *testing.T) {
	users := OfCombining(
		[]user{{1, "A"}, {2, "B"}, {1, "AAAA"}},
		func(_ int, _, _ user) Choice { return KeepNew },
	)
	got := users.Elements()
	want := []user{{1, "AAAA"}, {2, "B"}}
	if !slices.Equal(got, want) {
		t.Fatalf("elements = %v, want %v", got, want)
	}
}

func TestOfJSONRoundTrip(t *testing.T) {
	users := OfUnique(
		user{1, "Blob"},
		user{2, "Blob, Jr."},
	)
	out, err := json.Marshal(users)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `[{"id":1,"name":"Blob"},{"id":2,"name":"Blob, Jr."}]` {
		t.Fatalf("marshal = %s", out)
	}

	// A zero value decodes: the identity function comes from the type.
	var decoded Of[int, user]
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !Equal(&users.Vec, &decoded.Vec) {
		t.Fatalf("round trip: got %v, want %v", &decoded, users)
	}
}

func TestOfJSONDuplicate(t *testing.T) {
	var decoded Of[int, user]
	err := json.Unmarshal([]byte(`[{"id":1,"name":"a"},{"id":1,"name":"b"}]`), &decoded)
	if err == nil || err.Error() != "duplicate element at offset 1" {
		t.Fatalf("error = %v", err)
	}
}

// A named wrapper needs nothing but embedding to behave like the
// collection it wraps.
type userList struct {
	Of[int, user]
}

func TestNamedWrapperDelegates(t *testing.T) {
	var l userList
	l.Of = *NewOf[int, user]()

	l.Append(user{1, "Blob"})
	l.Append(user{1, "Impostor"})
	if l.Len() != 1 {
		t.Fatalf("len = %d", l.Len())
	}
	if _, ok := l.RemoveByID(1); !ok {
		t.Fatal("RemoveByID should reach the embedded collection")
	}
	if l.Len() != 0 {
		t.Fatalf("len = %d after removal", l.Len())
	}
}
