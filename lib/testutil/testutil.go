package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mazen160/go-random"
)

// ReadFixture loads a file from the package's testdata directory.
func ReadFixture(t testing.TB, name string) string {
	contents, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(contents)
}

// RandomID returns a random numeric identifier of the given length, in the
// shape of the site-assigned ids that appear in match hrefs.
func RandomID(t testing.TB, length int) string {
	id, err := random.Random(length, random.Digits, true)
	if err != nil {
		t.Fatal(err)
	}
	return id
}
