package grid

import "testing"

func TestEncodeFragment(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{State{Tag: AllTags, Page: 1}, "#"},
		{State{Tag: "go", Page: 1}, "#t=go"},
		{State{Tag: AllTags, Page: 3}, "#p=3"},
		{State{Tag: "go", Page: 2}, "#t=go&p=2"},
		{State{Tag: "machine learning", Page: 1}, "#t=machine%20learning"},
		{State{Tag: "c&c=1", Page: 1}, "#t=c%26c%3D1"},
		{State{Tag: "c(1)!*'", Page: 1}, "#t=c(1)!*'"},
		{State{Tag: "a~b-c_d.e", Page: 2}, "#t=a~b-c_d.e&p=2"},
		{State{Tag: "c++", Page: 1}, "#t=c%2B%2B"},
		{State{Tag: "", Page: 1}, "#"},
	}
	for _, tt := range tests {
		if got := EncodeFragment(tt.state); got != tt.expected {
			t.Errorf("EncodeFragment(%+v) = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestDecodeFragment(t *testing.T) {
	tests := []struct {
		input    string
		expected State
	}{
		{"", State{Tag: AllTags, Page: 1}},
		{"#", State{Tag: AllTags, Page: 1}},
		{"#p=2", State{Tag: AllTags, Page: 2}},
		{"#t=Go", State{Tag: "go", Page: 1}},
		{"#t=go&p=4", State{Tag: "go", Page: 4}},
		{"#p=4&t=go", State{Tag: "go", Page: 4}},
		{"t=go", State{Tag: "go", Page: 1}},
		{"#T=Go&P=2", State{Tag: "go", Page: 2}},
		{"#t=machine%20learning", State{Tag: "machine learning", Page: 1}},
		{"#t=c%26c%3D1", State{Tag: "c&c=1", Page: 1}},
		{"#t=&p=2", State{Tag: AllTags, Page: 2}},
		{"#t=&t=web", State{Tag: "web", Page: 1}},
		{"#t=go&t=web", State{Tag: "go", Page: 1}},
		{"#t=%zz", State{Tag: AllTags, Page: 1}},
		{"#p=abc", State{Tag: AllTags, Page: 1}},
		{"#p=-2", State{Tag: AllTags, Page: 1}},
		{"#p=0", State{Tag: AllTags, Page: 0}},
		{"#p=99999999999999999999999", State{Tag: AllTags, Page: 1}},
		{"#x=1&&=&t", State{Tag: AllTags, Page: 1}},
	}
	for _, tt := range tests {
		if got := DecodeFragment(tt.input); got != tt.expected {
			t.Errorf("DecodeFragment(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	tags := []string{AllTags, "go", "machine learning", "c++", "a&b", "ümlaut", "50%", "c(1)!*'"}
	for _, tag := range tags {
		for page := 1; page <= 12; page++ {
			s := State{Tag: tag, Page: page}
			if got := DecodeFragment(EncodeFragment(s)); got != s {
				t.Errorf("round trip of %+v = %+v (fragment %q)", s, got, EncodeFragment(s))
			}
		}
	}
}
