/*
Package okasaki is a small collection of purely functional data structures
in the spirit of Chris Okasaki's "Purely Functional Data Structures".

The data structures live in sub-packages of package persistent. This root
package holds a handful of functional helpers shared by them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package okasaki

import "iter"

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// --- Iterate ---------------------------------------------------------------

// Iterate returns the infinite sequence
//
//     seed, f(seed), f(f(seed)), …
//
// The sequence is lazy: f is called only when a consumer asks for the next
// element. It is restartable, i.e. every range over it starts at seed again.
func Iterate[T any](seed T, f func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		x := seed
		for yield(x) {
			x = f(x)
		}
	}
}

// Take collects the first n elements of seq into a slice.
// If seq is finite and shorter than n, all of its elements are returned.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return []T{}
	}
	r := make([]T, 0, n)
	for x := range seq {
		r = append(r, x)
		if len(r) == n {
			break
		}
	}
	return r
}

// Nth returns the element at index n of seq (counting from 0).
// found is false if seq ends before index n or n is negative.
func Nth[T any](seq iter.Seq[T], n int) (x T, found bool) {
	if n < 0 {
		return
	}
	i := 0
	for y := range seq {
		if i == n {
			return y, true
		}
		i++
	}
	return
}
