package osc

import "iter"

// Tuple is an ordered list of atomic values: the arguments of a message.
// Fixed-size tuples carry their element types statically; Values is the
// run-time sized form.
type Tuple interface {
	// TypeTags yields the tag of every element in order.
	TypeTags() iter.Seq[Tag]
	// Chain yields the concatenated encoding of every element in order.
	Chain() iter.Seq[byte]
	// Atoms yields every element in order.
	Atoms() iter.Seq[Atomic]
}

// Empty is the tuple with no elements.
type Empty struct{}

func (Empty) TypeTags() iter.Seq[Tag] { return func(func(Tag) bool) {} }
func (Empty) Chain() iter.Seq[byte]   { return func(func(byte) bool) {} }
func (Empty) Atoms() iter.Seq[Atomic] { return func(func(Atomic) bool) {} }

// atoms is the shared implementation behind the fixed-size tuples.
type atoms []Atomic

func (l atoms) typeTags() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, a := range l {
			if !yield(a.Tag()) {
				return
			}
		}
	}
}

func (l atoms) chain() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, a := range l {
			for b := range a.Bytes() {
				if !yield(b) {
					return
				}
			}
		}
	}
}

func (l atoms) all() iter.Seq[Atomic] {
	return func(yield func(Atomic) bool) {
		for _, a := range l {
			if !yield(a) {
				return
			}
		}
	}
}

// Tuple1 is a single-element tuple. Tuple2 through Tuple8 hold more
// elements of independent static types, in order V1, V2 and so on. When an
// element type is an interface such as Atomic the element must not be nil.
type Tuple1[T1 Atomic] struct {
	V1 T1
}

// NewTuple1 returns a Tuple1 holding v1.
func NewTuple1[T1 Atomic](v1 T1) Tuple1[T1] {
	return Tuple1[T1]{v1}
}

func (t Tuple1[T1]) list() atoms             { return atoms{t.V1} }
func (t Tuple1[T1]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple1[T1]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple1[T1]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple2 is a two-element tuple. See Tuple1.
type Tuple2[T1, T2 Atomic] struct {
	V1 T1
	V2 T2
}

// NewTuple2 returns a Tuple2 holding its arguments in order.
func NewTuple2[T1, T2 Atomic](v1 T1, v2 T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{v1, v2}
}

func (t Tuple2[T1, T2]) list() atoms             { return atoms{t.V1, t.V2} }
func (t Tuple2[T1, T2]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple2[T1, T2]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple2[T1, T2]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple3 is a three-element tuple. See Tuple1.
type Tuple3[T1, T2, T3 Atomic] struct {
	V1 T1
	V2 T2
	V3 T3
}

// NewTuple3 returns a Tuple3 holding its arguments in order.
func NewTuple3[T1, T2, T3 Atomic](v1 T1, v2 T2, v3 T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{v1, v2, v3}
}

func (t Tuple3[T1, T2, T3]) list() atoms             { return atoms{t.V1, t.V2, t.V3} }
func (t Tuple3[T1, T2, T3]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple3[T1, T2, T3]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple3[T1, T2, T3]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple4 is a four-element tuple. See Tuple1.
type Tuple4[T1, T2, T3, T4 Atomic] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// NewTuple4 returns a Tuple4 holding its arguments in order.
func NewTuple4[T1, T2, T3, T4 Atomic](v1 T1, v2 T2, v3 T3, v4 T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{v1, v2, v3, v4}
}

func (t Tuple4[T1, T2, T3, T4]) list() atoms             { return atoms{t.V1, t.V2, t.V3, t.V4} }
func (t Tuple4[T1, T2, T3, T4]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple4[T1, T2, T3, T4]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple4[T1, T2, T3, T4]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple5 is a five-element tuple. See Tuple1.
type Tuple5[T1, T2, T3, T4, T5 Atomic] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// NewTuple5 returns a Tuple5 holding its arguments in order.
func NewTuple5[T1, T2, T3, T4, T5 Atomic](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{v1, v2, v3, v4, v5}
}

func (t Tuple5[T1, T2, T3, T4, T5]) list() atoms {
	return atoms{t.V1, t.V2, t.V3, t.V4, t.V5}
}
func (t Tuple5[T1, T2, T3, T4, T5]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple5[T1, T2, T3, T4, T5]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple5[T1, T2, T3, T4, T5]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple6 is a six-element tuple. See Tuple1.
type Tuple6[T1, T2, T3, T4, T5, T6 Atomic] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// NewTuple6 returns a Tuple6 holding its arguments in order.
func NewTuple6[T1, T2, T3, T4, T5, T6 Atomic](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{v1, v2, v3, v4, v5, v6}
}

func (t Tuple6[T1, T2, T3, T4, T5, T6]) list() atoms {
	return atoms{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6}
}
func (t Tuple6[T1, T2, T3, T4, T5, T6]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple7 is a seven-element tuple. See Tuple1.
type Tuple7[T1, T2, T3, T4, T5, T6, T7 Atomic] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

// NewTuple7 returns a Tuple7 holding its arguments in order.
func NewTuple7[T1, T2, T3, T4, T5, T6, T7 Atomic](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Tuple7[T1, T2, T3, T4, T5, T6, T7] {
	return Tuple7[T1, T2, T3, T4, T5, T6, T7]{v1, v2, v3, v4, v5, v6, v7}
}

func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) list() atoms {
	return atoms{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7}
}
func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) TypeTags() iter.Seq[Tag] { return t.list().typeTags() }
func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) Chain() iter.Seq[byte]   { return t.list().chain() }
func (t Tuple7[T1, T2, T3, T4, T5, T6, T7]) Atoms() iter.Seq[Atomic] { return t.list().all() }

// Tuple8 is an eight-element tuple. See Tuple1.
type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 Atomic] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

// NewTuple8 returns a Tuple8 holding its arguments in order.
func NewTuple8[T1, T2, T3, T4, T5, T6, T7, T8 Atomic](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{v1, v2, v3, v4, v5, v6, v7, v8}
}

func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) list() atoms {
	return atoms{t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8}
}
func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) TypeTags() iter.Seq[Tag] {
	return t.list().typeTags()
}
func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Chain() iter.Seq[byte] { return t.list().chain() }
func (t Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Atoms() iter.Seq[Atomic] {
	return t.list().all()
}
