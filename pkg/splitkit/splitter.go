package splitkit

import "unicode/utf8"

// splitter yields the text between successive delimiter matches.
//
// Empty delimiter matches are only accepted where they separate two non-empty tokens,
// so an empty match at the beginning or the end of the subject,
// or one directly after the previous match, is skipped.
type splitter struct {
	subject string
	m       matcher
	limit   int

	token  string
	offset int // start of the next token
	search int // where the next delimiter lookup starts
	count  int
	done   bool
	err    error
}

func newSplitter(subject string, m matcher, limit int) *splitter {
	return &splitter{subject: subject, m: m, limit: limit}
}

func (s *splitter) Token() string { return s.token }

func (s *splitter) Err() error { return s.err }

func (s *splitter) Next() bool {
	if s.done {
		return false
	}
	if 0 < s.limit && s.count+1 == s.limit {
		return s.rest()
	}
	for {
		if len(s.subject) < s.search {
			return s.rest()
		}
		start, end, found, err := s.m.find(s.search)
		if err != nil {
			s.err = err
			s.done = true
			s.token = ""
			return false
		}
		if !found {
			return s.rest()
		}
		if start == end && (start == 0 || start == len(s.subject) || start == s.offset) {
			if start == len(s.subject) {
				return s.rest()
			}
			s.search = start + s.width(start)
			continue
		}
		s.token = s.subject[s.offset:start]
		s.offset = end
		s.search = end
		if start == end {
			s.search += s.width(end)
		}
		s.count++
		return true
	}
}

// rest yields the remainder of the subject as the last token.
func (s *splitter) rest() bool {
	s.token = s.subject[s.offset:]
	s.offset = len(s.subject)
	s.count++
	s.done = true
	return true
}

func (s *splitter) width(at int) int {
	if len(s.subject) <= at {
		return 1
	}
	_, size := utf8.DecodeRuneInString(s.subject[at:])
	return size
}
