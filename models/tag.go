package models

import (
	"sort"
	"strings"
)

// Tag is a short alphanumeric label. Case is kept exactly as entered,
// so "HDB" and "hdb" are different tags.
type Tag string

func ParseTag(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if !tagRegexp.MatchString(s) {
		return "", fieldError("tag", raw, TagConstraint)
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// TagSet is an immutable set of tags kept in sorted order.
type TagSet struct {
	tags []Tag
}

// NewTagSet de-duplicates and sorts the given tags.
func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	seen := make(map[Tag]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return TagSet{tags: out}
}

// ParseTagSet validates every raw tag.
func ParseTagSet(raw []string) (TagSet, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := ParseTag(r)
		if err != nil {
			return TagSet{}, err
		}
		tags = append(tags, t)
	}
	return NewTagSet(tags...), nil
}

func (s TagSet) Len() int      { return len(s.tags) }
func (s TagSet) IsEmpty() bool { return len(s.tags) == 0 }

func (s TagSet) Contains(t Tag) bool {
	i := sort.Search(len(s.tags), func(i int) bool { return s.tags[i] >= t })
	return i < len(s.tags) && s.tags[i] == t
}

// Intersect returns the tags present in both sets.
func (s TagSet) Intersect(other TagSet) TagSet {
	var out []Tag
	for _, t := range s.tags {
		if other.Contains(t) {
			out = append(out, t)
		}
	}
	return TagSet{tags: out}
}

// Slice returns a copy of the tags in sorted order.
func (s TagSet) Slice() []Tag {
	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// Strings returns the tag names in sorted order.
func (s TagSet) Strings() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = string(t)
	}
	return out
}

func (s TagSet) Equal(other TagSet) bool {
	if len(s.tags) != len(other.tags) {
		return false
	}
	for i := range s.tags {
		if s.tags[i] != other.tags[i] {
			return false
		}
	}
	return true
}

// String joins the tags with commas, the same form used for CSV export.
func (s TagSet) String() string {
	return strings.Join(s.Strings(), ",")
}
