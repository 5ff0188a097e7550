package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "manifest.csv"))
	require.NoError(t, err)
	require.Equal(t, 12, table.Len())

	first := table.Passengers[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 0, first.Survived)
	assert.Equal(t, 3, first.Pclass)
	assert.Equal(t, "Braund, Mr. Owen Harris", first.Name)
	assert.Equal(t, "male", first.Sex)
	assert.True(t, first.HasAge)
	assert.Equal(t, 22.0, first.Age)
	assert.Equal(t, "S", first.Embarked)

	// Row 6 has no age, row 11 no embarkation port, row 12 no fare.
	assert.False(t, table.Passengers[5].HasAge)
	assert.Empty(t, table.Passengers[10].Embarked)
	assert.False(t, table.Passengers[11].HasFare)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join("testdata", "nope.csv"))
		require.Error(t, err)
	})

	t.Run("missing column", func(t *testing.T) {
		path := writeCSV(t, "PassengerId,Survived\n1,0\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "missing column")
	})

	t.Run("bad survived value", func(t *testing.T) {
		path := writeCSV(t, header+`1,2,3,"Doe, Mr. John",male,30,0,0,T1,7.5,,S`+"\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "row 2")
	})

	t.Run("bad age", func(t *testing.T) {
		path := writeCSV(t, header+`1,0,3,"Doe, Mr. John",male,thirty,0,0,T1,7.5,,S`+"\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "bad Age")
	})

	t.Run("no data rows", func(t *testing.T) {
		path := writeCSV(t, header)
		_, err := Load(path)
		require.ErrorContains(t, err, "no data rows")
	})
}

const header = "PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestColumns(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "manifest.csv"))
	require.NoError(t, err)

	assert.Len(t, table.Ages(), 10)
	assert.Len(t, table.Fares(0), 11)
	assert.Len(t, table.Fares(1), 4)
	assert.Len(t, table.Labels(), 12)

	bySex := table.SurvivalCounts(func(p Passenger) string { return p.Sex })
	assert.Equal(t, [2]int{0, 6}, bySex["female"])
	assert.Equal(t, [2]int{6, 0}, bySex["male"])
}

func TestSummary(t *testing.T) {
	table, err := Load(filepath.Join("testdata", "manifest.csv"))
	require.NoError(t, err)

	cols := map[string]ColumnSummary{}
	for _, c := range table.Summary() {
		cols[c.Name] = c
	}

	age := cols["Age"]
	assert.Equal(t, 10, age.Count)
	assert.Equal(t, 2, age.Missing)
	assert.InDelta(t, 29.1, age.Mean, 1e-9)
	assert.Equal(t, 2.0, age.Min)
	assert.Equal(t, 54.0, age.Max)

	embarked := cols["Embarked"]
	assert.Equal(t, 1, embarked.Missing)
	assert.Equal(t, 8, embarked.Levels["S"])
	assert.Equal(t, 2, embarked.Levels["C"])
	assert.Equal(t, 1, embarked.Levels["Q"])

	survived := cols["Survived"]
	assert.Equal(t, 6, survived.Levels["0"])
	assert.Equal(t, 6, survived.Levels["1"])
}
