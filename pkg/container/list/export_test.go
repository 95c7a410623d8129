package list

// Keys returns the stored keys in chain order starting at the head.
func (l *List[K, V]) Keys() []K {
	k := make([]K, 0, l.size)
	for n := l.head; n != nil; n = n.Next {
		k = append(k, n.Key)
	}
	return k
}
