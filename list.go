package rage

// List is an ordered sequence that never holds the same value twice.
// Membership is decided by ==, so pointer and interface elements compare by
// identity. Mutations report success; nothing panics on bad input.
type List[T comparable] struct {
	items []T
}

// Add appends v unless it is already present.
func (l *List[T]) Add(v T) bool {
	if l.Contains(v) {
		return false
	}
	l.items = append(l.items, v)
	return true
}

// AddAt inserts v before the element at index. index == Len() appends.
func (l *List[T]) AddAt(v T, index int) bool {
	if index < 0 || index > len(l.items) || l.Contains(v) {
		return false
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = v
	return true
}

// Remove deletes v. Returns false if v is not a member.
func (l *List[T]) Remove(v T) bool {
	_, ok := l.RemoveAt(l.IndexOf(v))
	return ok
}

// RemoveAt deletes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	v := l.items[index]
	copy(l.items[index:], l.items[index+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return v, true
}

// Swap exchanges the positions of a and b. Both must be members.
func (l *List[T]) Swap(a, b T) bool {
	return l.SwapAt(l.IndexOf(a), l.IndexOf(b))
}

// SwapAt exchanges the elements at i and j. Both must be in range.
func (l *List[T]) SwapAt(i, j int) bool {
	n := len(l.items)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}
	l.items[i], l.items[j] = l.items[j], l.items[i]
	return true
}

// IndexOf returns the position of v, or -1.
func (l *List[T]) IndexOf(v T) int {
	for i, it := range l.items {
		if it == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is a member.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the element at index, or false when index is out of range.
func (l *List[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[index], true
}

// Slice returns a shallow copy of the elements in order.
func (l *List[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Clear removes every element.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}
