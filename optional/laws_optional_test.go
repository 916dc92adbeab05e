package optional_test

import (
	"testing"
	"testing/quick"

	"github.com/kabu1204/go-stream/optional"
)

func fromPair(v int, present bool) optional.Optional[int] {
	return optional.FromOk(v, present)
}

func TestOptionalFunctorLaws(t *testing.T) {
	identity := func(x int) int { return x }
	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	identityLaw := func(v int, present bool) bool {
		o := fromPair(v, present)
		return optional.Equal(optional.Map(o, identity), o)
	}
	if err := quick.Check(identityLaw, nil); err != nil {
		t.Fatalf("identity law failed: %v", err)
	}

	compositionLaw := func(v int, present bool) bool {
		o := fromPair(v, present)
		left := optional.Map(o, func(x int) int { return double(inc(x)) })
		right := optional.Map(optional.Map(o, inc), double)
		return optional.Equal(left, right)
	}
	if err := quick.Check(compositionLaw, nil); err != nil {
		t.Fatalf("composition law failed: %v", err)
	}
}

func TestOptionalFlattenLaw(t *testing.T) {
	unwrapped := func(x int) int { return x - 3 }
	wrapped := func(x int) optional.Optional[int] { return optional.MustOf(unwrapped(x)) }

	law := func(v int, present bool) bool {
		o := fromPair(v, present)
		return optional.Equal(optional.FlatMap(o, wrapped), optional.Map(o, unwrapped))
	}
	if err := quick.Check(law, nil); err != nil {
		t.Fatalf("flatten law failed: %v", err)
	}
}

func TestOfNullablePresence(t *testing.T) {
	law := func(v int, isNil bool) bool {
		var p *int
		if !isNil {
			p = &v
		}
		return optional.OfNullable(p).IsPresent() == (p != nil)
	}
	if err := quick.Check(law, nil); err != nil {
		t.Fatal(err)
	}
}

func TestOrElseLaws(t *testing.T) {
	law := func(v, w int) bool {
		return optional.Empty[int]().OrElse(v) == v && optional.OfNullable(v).OrElse(w) == v
	}
	if err := quick.Check(law, nil); err != nil {
		t.Fatal(err)
	}
}
