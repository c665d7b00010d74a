package model

import (
	"errors"
	"net/url"
)

// ErrRelativeURL is returned for URLs that lack a scheme or a host.
var ErrRelativeURL = errors.New("url is not absolute")

// URL is an absolute URL that marshals to and from its string form.
type URL struct {
	url.URL
}

// ParseURL parses s and rejects anything that isn't an absolute URL.
func ParseURL(s string) (*URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() || (u.Host == "" && u.Opaque == "") {
		return nil, ErrRelativeURL
	}
	return &URL{*u}, nil
}

// MustParseURL is like ParseURL but panics on error.
func MustParseURL(s string) *URL {
	u, err := ParseURL(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *URL) String() string {
	return u.URL.String()
}

func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.URL.String()), nil
}

func (u *URL) UnmarshalText(b []byte) error {
	p, err := ParseURL(string(b))
	if err != nil {
		return err
	}
	*u = *p
	return nil
}

// nullURL converts an optional URL to its column value.
func nullURL(u *URL) interface{} {
	if u == nil {
		return nil
	}
	return u.String()
}

// parseNullURL drops stored values that no longer parse.
func parseNullURL(s *string) *URL {
	if s == nil {
		return nil
	}
	u, err := ParseURL(*s)
	if err != nil {
		return nil
	}
	return u
}
