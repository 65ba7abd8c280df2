package i18n

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
)

type BundleTestSuite struct {
	suite.Suite
	bundle *Bundle
}

func (s *BundleTestSuite) SetupTest() {
	bundle, err := New(&Config{Logger: zaptest.NewLogger(s.T())})
	s.Require().NoError(err)
	s.bundle = bundle
}

func (s *BundleTestSuite) TearDownTest() {
	s.NoError(s.bundle.Close())
}

func TestBundleTestSuite(t *testing.T) {
	suite.Run(t, new(BundleTestSuite))
}

func (s *BundleTestSuite) TestLookup() {
	s.Equal("Buy:", s.bundle.T("en", "title.prefix.buy", nil))
	s.Equal("Ankauf:", s.bundle.T("de", "title.prefix.buy", nil))
}

func (s *BundleTestSuite) TestInterpolation() {
	got := s.bundle.T("en", "board.reward.item", map[string]string{
		"n":    "3",
		"item": "Gold Bar",
	})
	s.Equal("3x Gold Bar", got)
}

func (s *BundleTestSuite) TestUnknownLangFallsBackToEnglish() {
	s.Equal("Buy:", s.bundle.T("fr", "title.prefix.buy", nil))
}

func (s *BundleTestSuite) TestUnknownKeyReturnsKey() {
	s.Equal("no.such.key", s.bundle.T("en", "no.such.key", nil))
}

func (s *BundleTestSuite) TestLanguages() {
	s.ElementsMatch([]string{"en", "de"}, s.bundle.Languages())
}

// Every key present in English must exist in every other locale so a
// language switch never mixes messages.
func (s *BundleTestSuite) TestLocaleParity() {
	en := s.bundle.embedded["en"]
	s.Require().NotEmpty(en)

	for lang, flat := range s.bundle.embedded {
		if lang == "en" {
			continue
		}
		for key := range en {
			s.Contains(flat, key, "locale %s missing key %s", lang, key)
		}
		for key := range flat {
			s.Contains(en, key, "locale %s has extra key %s", lang, key)
		}
	}
}

func (s *BundleTestSuite) TestOverridesShadowEmbedded() {
	dir := s.T().TempDir()
	err := os.WriteFile(filepath.Join(dir, "en.yaml"),
		[]byte("title:\n  prefix:\n    buy: \"WTB:\"\n"), 0644)
	s.Require().NoError(err)

	bundle, err := New(&Config{
		OverrideDir: dir,
		Logger:      zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	defer bundle.Close()

	s.Equal("WTB:", bundle.T("en", "title.prefix.buy", nil))
	// Keys without an override still resolve
	s.Equal("Sell:", bundle.T("en", "title.prefix.sell", nil))
}

func (s *BundleTestSuite) TestOverridesReloadOnChange() {
	dir := s.T().TempDir()

	bundle, err := New(&Config{
		OverrideDir: dir,
		Logger:      zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	defer bundle.Close()

	s.Equal("Buy:", bundle.T("en", "title.prefix.buy", nil))

	err = os.WriteFile(filepath.Join(dir, "en.yaml"),
		[]byte("title:\n  prefix:\n    buy: \"WTB:\"\n"), 0644)
	s.Require().NoError(err)

	s.Eventually(func() bool {
		return bundle.T("en", "title.prefix.buy", nil) == "WTB:"
	}, 3*time.Second, 20*time.Millisecond)
}

func (s *BundleTestSuite) TestMalformedOverrideIgnored() {
	dir := s.T().TempDir()
	err := os.WriteFile(filepath.Join(dir, "en.yaml"),
		[]byte(":: not yaml ::\n\t"), 0644)
	s.Require().NoError(err)

	bundle, err := New(&Config{
		OverrideDir: dir,
		Logger:      zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	defer bundle.Close()

	s.Equal("Buy:", bundle.T("en", "title.prefix.buy", nil))
}
