package quickpad

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestUserAgent(t *testing.T) {
	if got, want := UserAgent(), "quickpad/"+Version(); got != want {
		t.Fatalf("user agent: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-rc.1", want: true},
		{version: " 2.0.0 ", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "1.02.3", want: false},
	}

	for _, tc := range cases {
		if got := IsSemver(tc.version); got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
