package scribe

import "testing"

func TestVersion_IsSemver(t *testing.T) {
	if _, err := ParseSemver(Version()); err != nil {
		t.Fatalf("embedded version must be semver: %v", err)
	}
}

func TestVersionTag_PrefixesV(t *testing.T) {
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestParseSemver(t *testing.T) {
	cases := []struct {
		version string
		want    Semver
		ok      bool
	}{
		{version: "0.1.0", want: Semver{Minor: 1}, ok: true},
		{version: "1.2.3-alpha.1", want: Semver{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}, ok: true},
		{version: "2.0.0+build.7", want: Semver{Major: 2}, ok: true},
		{version: "v1.2.3"},
		{version: "1.2"},
		{version: "01.2.3"},
	}

	for _, tc := range cases {
		got, err := ParseSemver(tc.version)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseSemver(%q): err=%v, want ok=%v", tc.version, err, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseSemver(%q): got %+v, want %+v", tc.version, got, tc.want)
		}
	}
}

func TestSemver_String(t *testing.T) {
	if got, want := (Semver{Major: 1, Minor: 2, Patch: 3, Pre: "rc.1"}).String(), "1.2.3-rc.1"; got != want {
		t.Fatalf("String(): got %q, want %q", got, want)
	}
}
