package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/dllist/list"
	"github.com/onsi/gomega"
)

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// ExpectValidList asserts that the links of l are consistent in both directions
// and agree with its length.
func ExpectValidList[V any](g gomega.Gomega, l *list.List[V]) {
	if l.Len() == 0 {
		g.Expect(l.Front()).To(gomega.BeNil())
		g.Expect(l.Back()).To(gomega.BeNil())
		return
	}

	g.Expect(l.Front()).NotTo(gomega.BeNil())
	g.Expect(l.Back()).NotTo(gomega.BeNil())
	g.Expect(l.Front().Prev()).To(gomega.BeNil())
	g.Expect(l.Back().Next()).To(gomega.BeNil())

	if l.Len() == 1 {
		g.Expect(l.Front()).To(gomega.BeIdenticalTo(l.Back()))
	}

	{
		n := 0
		var last *list.Element[V]
		for e := l.Front(); e != nil; e = e.Next() {
			if next := e.Next(); next != nil {
				g.Expect(next.Prev()).To(gomega.BeIdenticalTo(e))
			}
			last = e
			n++
			g.Expect(n).To(gomega.BeNumerically("<=", l.Len()), "forward walk exceeds length")
		}

		g.Expect(n).To(gomega.Equal(l.Len()))
		g.Expect(last).To(gomega.BeIdenticalTo(l.Back()))
	}

	{
		n := 0
		var first *list.Element[V]
		for e := l.Back(); e != nil; e = e.Prev() {
			if prev := e.Prev(); prev != nil {
				g.Expect(prev.Next()).To(gomega.BeIdenticalTo(e))
			}
			first = e
			n++
			g.Expect(n).To(gomega.BeNumerically("<=", l.Len()), "backward walk exceeds length")
		}

		g.Expect(n).To(gomega.Equal(l.Len()))
		g.Expect(first).To(gomega.BeIdenticalTo(l.Front()))
	}
}
