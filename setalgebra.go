package ordered

// Set algebra. Results are ordered by the comparator of the receiver;
// membership in the other set is tested with the other set's comparator.
//
// The Form… variants modify the receiver. They first collect what to change
// and apply the changes afterwards, so that receiver and argument may be the
// same set.

// Union returns a new set with the elements of s and other.
func (s *Set[K]) Union(other *Set[K]) (*Set[K], error) {
	u := s.Clone()
	if err := u.FormUnion(other); err != nil {
		return nil, err
	}
	return u, nil
}

// Intersection returns a new set with the elements of s which are also in
// other.
func (s *Set[K]) Intersection(other *Set[K]) (*Set[K], error) {
	r := s.empty()
	for k := range s.All() {
		in, err := other.has(k)
		if err != nil {
			return nil, err
		}
		if in {
			if _, err := r.Insert(k); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// SymmetricDifference returns a new set with the elements which are in
// exactly one of s and other.
func (s *Set[K]) SymmetricDifference(other *Set[K]) (*Set[K], error) {
	r, err := s.Difference(other)
	if err != nil {
		return nil, err
	}
	for k := range other.All() {
		in, err := s.has(k)
		if err != nil {
			return nil, err
		}
		if !in {
			if _, err := r.Insert(k); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// Difference returns a new set with the elements of s which are not in other.
func (s *Set[K]) Difference(other *Set[K]) (*Set[K], error) {
	r := s.empty()
	for k := range s.All() {
		in, err := other.has(k)
		if err != nil {
			return nil, err
		}
		if !in {
			if _, err := r.Insert(k); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

// FormUnion inserts the elements of other into s.
func (s *Set[K]) FormUnion(other *Set[K]) error {
	for _, k := range other.Elements() {
		if _, err := s.Insert(k); err != nil {
			return err
		}
	}
	return nil
}

// FormIntersection removes the elements from s which are not in other.
func (s *Set[K]) FormIntersection(other *Set[K]) error {
	var drop []K
	for k := range s.All() {
		in, err := other.has(k)
		if err != nil {
			return err
		}
		if !in {
			drop = append(drop, k)
		}
	}
	return s.removeAll(drop)
}

// FormSymmetricDifference removes the elements of other from s and inserts
// those which have not been in s.
func (s *Set[K]) FormSymmetricDifference(other *Set[K]) error {
	var drop, add []K
	for k := range other.All() {
		in, err := s.has(k)
		if err != nil {
			return err
		}
		if in {
			drop = append(drop, k)
		} else {
			add = append(add, k)
		}
	}
	if err := s.removeAll(drop); err != nil {
		return err
	}
	for _, k := range add {
		if _, err := s.Insert(k); err != nil {
			return err
		}
	}
	return nil
}

// FormDifference removes the elements of other from s.
func (s *Set[K]) FormDifference(other *Set[K]) error {
	var drop []K
	for k := range other.All() {
		in, err := s.has(k)
		if err != nil {
			return err
		}
		if in {
			drop = append(drop, k)
		}
	}
	return s.removeAll(drop)
}

// IsSubset reports whether every element of s is in other.
func (s *Set[K]) IsSubset(other *Set[K]) (bool, error) {
	if s.Len() > other.Len() {
		return false, nil
	}
	for k := range s.All() {
		in, err := other.has(k)
		if err != nil || !in {
			return false, err
		}
	}
	return true, nil
}

// IsSuperset reports whether every element of other is in s.
func (s *Set[K]) IsSuperset(other *Set[K]) (bool, error) {
	return other.IsSubset(s)
}

// IsDisjoint reports whether s and other have no element in common.
func (s *Set[K]) IsDisjoint(other *Set[K]) (bool, error) {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for k := range small.All() {
		in, err := large.has(k)
		if err != nil || in {
			return false, err
		}
	}
	return true, nil
}

// has is Contains with comparator errors.
func (s *Set[K]) has(key K) (bool, error) {
	if s.IsEmpty() {
		return false, nil
	}
	return s.engine().Contains(key)
}

func (s *Set[K]) removeAll(keys []K) error {
	for _, k := range keys {
		if _, _, err := s.Remove(k); err != nil {
			return err
		}
	}
	return nil
}
