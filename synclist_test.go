package dllist_test

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mgnsk/dllist"
	"github.com/mgnsk/dllist/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("inserting values", func() {
	var l *dllist.SyncList[int]

	BeforeEach(func() {
		l = dllist.New[int]()
		for i := 1; i <= 5; i++ {
			l.Insert(i)
		}
	})

	Specify("the last inserted value is at the front", func() {
		Expect(l.ToSlice()).To(Equal([]int{5, 4, 3, 2, 1}))
		Expect(l.Len()).To(Equal(5))
	})

	When("the relative value exists", func() {
		Specify("InsertAfter inserts after it", func() {
			l.InsertAfter(10, list.Value(3))
			Expect(l.ToSlice()).To(Equal([]int{5, 4, 3, 10, 2, 1}))
		})

		Specify("InsertBefore inserts before it", func() {
			l.InsertBefore(10, list.Value(3))
			Expect(l.ToSlice()).To(Equal([]int{5, 4, 10, 3, 2, 1}))
		})
	})

	When("the relative value does not exist", func() {
		Specify("InsertAfter appends at the back", func() {
			l.InsertAfter(10, list.Value(1000))
			Expect(l.ToSlice()).To(Equal([]int{5, 4, 3, 2, 1, 10}))
			Expect(l.Len()).To(Equal(6))
		})

		Specify("InsertBefore appends at the back", func() {
			l.InsertBefore(10, list.Func(func(v int) bool { return v > 100 }))
			Expect(l.ToSlice()).To(Equal([]int{5, 4, 3, 2, 1, 10}))
			Expect(l.Len()).To(Equal(6))
		})
	})
})

var _ = Describe("deleting values", func() {
	var l *dllist.SyncList[string]

	BeforeEach(func() {
		l = dllist.New[string]()
	})

	When("the list is empty", func() {
		Specify("nothing is deleted", func() {
			Expect(l.Delete(list.Value("one"))).To(BeFalse())
			Expect(l.Len()).To(BeZero())
		})
	})

	When("the value exists", func() {
		Specify("it is deleted", func() {
			l.Insert("two")
			l.Insert("one")

			Expect(l.Delete(list.Value("two"))).To(BeTrue())
			Expect(l.ToSlice()).To(Equal([]string{"one"}))

			Expect(l.Delete(list.Value("one"))).To(BeTrue())
			Expect(l.ToSlice()).To(BeEmpty())
		})
	})
})

var _ = Describe("searching values", func() {
	var l *dllist.SyncList[string]

	BeforeEach(func() {
		l = dllist.New(dllist.WithComparator(strings.EqualFold))
		l.Insert("World")
		l.Insert("Hello")
	})

	DescribeTable("matching",
		func(m list.Matcher[string], expected string, found bool) {
			value, ok := l.Search(m)
			Expect(ok).To(Equal(found))
			Expect(value).To(Equal(expected))
			Expect(l.Contains(m)).To(Equal(found))
		},
		Entry("literal", list.Value("hello"), "Hello", true),
		Entry("literal with the configured comparator", list.Value("WORLD"), "World", true),
		Entry("predicate", list.Func(func(v string) bool { return strings.HasPrefix(v, "W") }), "World", true),
		Entry("missing literal", list.Value("missing"), "", false),
		Entry("missing predicate", list.Func(func(string) bool { return false }), "", false),
	)

	Specify("Range stops when f returns false", func() {
		var values []string
		l.Range(func(v string) bool {
			values = append(values, v)
			return false
		})
		Expect(values).To(Equal([]string{"Hello"}))
	})
})

var _ = Describe("concurrent access", func() {
	const n = 100

	Specify("concurrent inserts are all applied", func() {
		l := dllist.New[int]()

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()

				if i%2 == 0 {
					l.Insert(i)
				} else {
					l.InsertAfter(i, list.Value(0))
				}
			}(i)
		}
		wait(&wg)

		Expect(l.Len()).To(Equal(n))
		Expect(l.ToSlice()).To(HaveLen(n))
	})

	Specify("readers run alongside writers", func() {
		l := dllist.New[int]()
		for i := 0; i < n; i++ {
			l.Insert(i)
		}

		var (
			wg    sync.WaitGroup
			found atomic.Int64
		)

		for i := 0; i < n; i++ {
			wg.Add(2)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()

				Expect(l.Delete(list.Value(i))).To(BeTrue())
			}(i)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()

				if l.Contains(list.Value(i)) {
					found.Add(1)
				}
				Expect(len(l.ToSlice())).To(BeNumerically("<=", n))
			}(i)
		}
		wait(&wg)

		Expect(l.Len()).To(BeZero())
		Expect(found.Load()).To(BeNumerically("<=", n))
	})
})
