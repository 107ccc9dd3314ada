package salary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/darealghost7/data-vis/pkg/salary"
)

func TestDataset(t *testing.T) {
	records := salary.Dataset()
	require.Len(t, records, 15)
	require.Equal(t, salary.Record{Experience: 1, Education: salary.Bachelors, Location: salary.Remote, Salary: 48}, records[0])
	require.Equal(t, salary.Record{Experience: 20, Education: salary.Masters, Location: salary.OnSite, Salary: 120}, records[14])
}

func TestFitByLocationRecoversExactLine(t *testing.T) {
	// Exactly collinear groups: Remote on y=40+4x, On-site on y=50+3x.
	records := []salary.Record{
		{Experience: 1, Location: salary.Remote, Salary: 44},
		{Experience: 5, Location: salary.Remote, Salary: 60},
		{Experience: 10, Location: salary.Remote, Salary: 80},
		{Experience: 2, Location: salary.OnSite, Salary: 56},
		{Experience: 4, Location: salary.OnSite, Salary: 62},
	}
	fits := salary.FitByLocation(records, zerolog.Nop())
	require.Len(t, fits, 2)

	require.Equal(t, salary.Remote, fits[0].Location)
	require.InDelta(t, 40.0, fits[0].Intercept, 1e-9)
	require.InDelta(t, 4.0, fits[0].Slope, 1e-9)

	require.Equal(t, salary.OnSite, fits[1].Location)
	require.InDelta(t, 50.0, fits[1].Intercept, 1e-9)
	require.InDelta(t, 3.0, fits[1].Slope, 1e-9)
}

func TestFitByLocationSkipsUndersizedGroups(t *testing.T) {
	records := []salary.Record{
		{Experience: 1, Location: salary.Remote, Salary: 50},
		{Experience: 2, Location: salary.Remote, Salary: 55},
		{Experience: 3, Location: salary.Hybrid, Salary: 70}, // single point
	}
	fits := salary.FitByLocation(records, zerolog.Nop())
	require.Len(t, fits, 1)
	require.Equal(t, salary.Remote, fits[0].Location)
}

func TestFitByLocationFullDataset(t *testing.T) {
	fits := salary.FitByLocation(salary.Dataset(), zerolog.Nop())
	require.Len(t, fits, 3)
	for _, fit := range fits {
		// Salary grows with experience in every location group.
		require.Greater(t, fit.Slope, 0.0)
	}
}

func TestDomain(t *testing.T) {
	records := salary.Dataset()
	domain := salary.Domain(records, 100)
	require.Len(t, domain, 100)
	require.InDelta(t, 1.0, domain[0], 1e-9)
	require.InDelta(t, 20.0, domain[99], 1e-9)
	for i := 1; i < len(domain); i++ {
		require.Greater(t, domain[i], domain[i-1])
	}

	require.Nil(t, salary.Domain(nil, 100))
}

func TestRenderWritesChart(t *testing.T) {
	records := salary.Dataset()
	fits := salary.FitByLocation(records, zerolog.Nop())

	path := filepath.Join(t.TempDir(), "salary.png")
	require.NoError(t, salary.Render(records, fits, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
