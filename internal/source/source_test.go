package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBulletinWithTerminators(t *testing.T) {
	bulletin := "METAR USRR 211730Z 23004MPS CAVOK M02/M04 Q1027=\n" +
		"TAF EDDH 211100Z 2112/2218 20013KT 9999 BKN020\n" +
		"  TEMPO 2112/2120 21015G25KT 4000 SHRA=\n"

	reports, err := SplitBulletin(strings.NewReader(bulletin))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "METAR USRR 211730Z 23004MPS CAVOK M02/M04 Q1027", reports[0])
	// Continuation lines fold into a single whitespace-normalized report.
	assert.Equal(t, "TAF EDDH 211100Z 2112/2218 20013KT 9999 BKN020 TEMPO 2112/2120 21015G25KT 4000 SHRA", reports[1])
}

func TestSplitBulletinBlankLineMode(t *testing.T) {
	bulletin := "METAR USRR 211730Z 23004MPS CAVOK\n" +
		"\n" +
		"TAF EDDH 211100Z 2112/2218 20013KT\n" +
		"  BECMG 2116/2118 21008KT\n" +
		"\n" +
		"METAR UUEE 211730Z 22005MPS 9999\n"

	reports, err := SplitBulletin(strings.NewReader(bulletin))
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "TAF EDDH 211100Z 2112/2218 20013KT BECMG 2116/2118 21008KT", reports[1])
	assert.Equal(t, "METAR UUEE 211730Z 22005MPS 9999", reports[2])
}

func TestSplitBulletinEmpty(t *testing.T) {
	reports, err := SplitBulletin(strings.NewReader("  \n\n  "))
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestFromArgs(t *testing.T) {
	src := FromArgs([]string{
		"METAR USRR 211730Z  23004MPS CAVOK=",
		"   ",
		"KJFK 092251Z 22010KT",
	})

	reports, err := src.Reports()
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "METAR USRR 211730Z 23004MPS CAVOK", reports[0])
	assert.Equal(t, "KJFK 092251Z 22010KT", reports[1])
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulletin.txt")
	require.NoError(t, os.WriteFile(path, []byte("METAR USRR 211730Z CAVOK=\nMETAR UUEE 211730Z 9999=\n"), 0o644))

	reports, err := FromFile(path).Reports()
	require.NoError(t, err)
	assert.Equal(t, []string{"METAR USRR 211730Z CAVOK", "METAR UUEE 211730Z 9999"}, reports)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.txt")).Reports()
	assert.Error(t, err)
}

func TestFromReader(t *testing.T) {
	reports, err := FromReader(strings.NewReader("USRR 211730Z CAVOK=")).Reports()
	require.NoError(t, err)
	assert.Equal(t, []string{"USRR 211730Z CAVOK"}, reports)
}
