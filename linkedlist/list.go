// Package linkedlist implements a generic doubly linked list.
//
// The list keeps a sentinel root node so that insertion and removal at either
// end never special-case an empty list. The zero value of List is an empty
// list ready to use.
package linkedlist

import "iter"

// Node is an element of a List.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
	list       *List[T]
}

// Next returns the next node or nil.
func (n *Node[T]) Next() *Node[T] {
	if p := n.next; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// Prev returns the previous node or nil.
func (n *Node[T]) Prev() *Node[T] {
	if p := n.prev; n.list != nil && p != &n.list.root {
		return p
	}
	return nil
}

// List is a doubly linked list of values of type T.
type List[T any] struct {
	root Node[T]
	len  int
}

func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// Init empties the list.
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

func (l *List[T]) Len() int { return l.len }

// Front returns the first node of the list or nil if the list is empty.
func (l *List[T]) Front() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last node of the list or nil if the list is empty.
func (l *List[T]) Back() *Node[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *List[T]) insert(n, at *Node[T]) *Node[T] {
	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	n.list = l
	l.len++
	return n
}

func (l *List[T]) remove(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.list = nil
	l.len--
}

func (l *List[T]) PushFront(v T) *Node[T] {
	l.lazyInit()
	return l.insert(&Node[T]{Value: v}, &l.root)
}

func (l *List[T]) PushBack(v T) *Node[T] {
	l.lazyInit()
	return l.insert(&Node[T]{Value: v}, l.root.prev)
}

// PopFront removes the first node and returns its value.
// The boolean is false if the list was empty.
func (l *List[T]) PopFront() (T, bool) {
	n := l.Front()
	if n == nil {
		var zero T
		return zero, false
	}
	l.remove(n)
	return n.Value, true
}

// PopBack removes the last node and returns its value.
// The boolean is false if the list was empty.
func (l *List[T]) PopBack() (T, bool) {
	n := l.Back()
	if n == nil {
		var zero T
		return zero, false
	}
	l.remove(n)
	return n.Value, true
}

// Remove removes n from l if n belongs to l and returns its value.
func (l *List[T]) Remove(n *Node[T]) T {
	if n.list == l {
		l.remove(n)
	}
	return n.Value
}

// Clear drops every node. Nodes handed out earlier are detached so a stale
// node can no longer be passed to Remove.
func (l *List[T]) Clear() {
	for n := l.Front(); n != nil; {
		next := n.Next()
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.Init()
}

// All iterates values front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Front(); n != nil; n = n.Next() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Backward iterates values back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.Back(); n != nil; n = n.Prev() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	res := make([]T, 0, l.len)
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}
