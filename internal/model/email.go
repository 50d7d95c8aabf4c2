package model

import (
	"encoding/json"
	"sort"
)

// EmailSet is a set of candidate email addresses.
// Membership is exact string equality: "A@x.com" and "a@x.com" are two
// different members. Insertion order is not retained.
type EmailSet struct {
	members map[string]struct{}
}

// NewEmailSet returns a set holding the given addresses.
func NewEmailSet(emails ...string) *EmailSet {
	s := &EmailSet{members: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		s.Add(e)
	}
	return s
}

// Add inserts an address. It reports whether the address was new.
func (s *EmailSet) Add(email string) bool {
	if s.members == nil {
		s.members = make(map[string]struct{})
	}
	if _, ok := s.members[email]; ok {
		return false
	}
	s.members[email] = struct{}{}
	return true
}

// Contains reports whether the address is a member.
func (s *EmailSet) Contains(email string) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[email]
	return ok
}

// Len returns the number of members.
func (s *EmailSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s *EmailSet) IsEmpty() bool {
	return s.Len() == 0
}

// Filter returns a new set with the members for which keep returns true.
func (s *EmailSet) Filter(keep func(string) bool) *EmailSet {
	out := NewEmailSet()
	if s == nil {
		return out
	}
	for e := range s.members {
		if keep(e) {
			out.Add(e)
		}
	}
	return out
}

// Sorted returns the members in lexical order.
// The order is only for stable presentation.
func (s *EmailSet) Sorted() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s.members))
	for e := range s.members {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold exactly the same members.
func (s *EmailSet) Equal(other *EmailSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for e := range s.members {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the set as a sorted JSON array.
func (s *EmailSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of addresses.
func (s *EmailSet) UnmarshalJSON(data []byte) error {
	var emails []string
	if err := json.Unmarshal(data, &emails); err != nil {
		return err
	}
	s.members = make(map[string]struct{}, len(emails))
	for _, e := range emails {
		s.members[e] = struct{}{}
	}
	return nil
}
