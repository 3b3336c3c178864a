package main

import (
	"fmt"

	"github.com/mgnsk/dllist"
	"github.com/mgnsk/dllist/list"
)

type task struct {
	ID   int
	Name string
}

func main() {
	var l list.List[task]

	l.Insert(task{ID: 3, Name: "deploy"})
	l.Insert(task{ID: 1, Name: "build"})

	// Inserts after the element found by a predicate.
	l.InsertAfter(task{ID: 2, Name: "test"}, list.Func(func(t task) bool {
		return t.ID == 1
	}))

	// No match appends at the back.
	l.InsertBefore(task{ID: 4, Name: "notify"}, list.Value(task{ID: 100}))

	// Literal matchers compare values structurally.
	l.Delete(list.Value(task{ID: 3, Name: "deploy"}))

	for _, t := range l.ToSlice() {
		fmt.Println(t.ID, t.Name)
	}

	// The synchronized list can be shared between goroutines.
	s := dllist.New[string]()
	s.Insert("b")
	s.InsertBefore("a", list.Value("b"))

	fmt.Println(s.ToSlice(), s.Len())
}
