package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/darealghost7/data-vis/pkg/schema"
)

func TestResolveSeparatorVariants(t *testing.T) {
	testCases := map[string][]string{
		"hyphens":     {"age", "sex", "hours-per-week", "education-num", "native-country"},
		"underscores": {"age", "sex", "hours_per_week", "education_num", "native_country"},
		"dots":        {"age", "sex", "hours.per.week", "education.num", "native.country"},
	}
	for name, headers := range testCases {
		t.Run(name, func(t *testing.T) {
			r := schema.NewResolver(headers)
			for _, canonical := range []string{"hours_per_week", "education_num", "native_country"} {
				actual, ok := r.Resolve(canonical)
				require.True(t, ok, "canonical %q should resolve", canonical)
				require.Contains(t, headers, actual)
			}
		})
	}
}

func TestResolveAllVariantsAgree(t *testing.T) {
	// The same logical field must resolve regardless of source spelling.
	for _, spelling := range []string{"hours-per-week", "hours_per_week", "hours.per.week"} {
		r := schema.NewResolver([]string{spelling})
		actual, ok := r.Resolve("hours_per_week")
		require.True(t, ok)
		require.Equal(t, spelling, actual)
	}
}

func TestResolveUnmappedPassthrough(t *testing.T) {
	r := schema.NewResolver([]string{"age", "shoe_size"})

	// Unknown header maps to itself.
	actual, ok := r.Resolve("shoe_size")
	require.True(t, ok)
	require.Equal(t, "shoe_size", actual)

	// A canonical column absent from the headers does not resolve.
	_, ok = r.Resolve("income")
	require.False(t, ok)

	// Lookup keeps the never-fails contract.
	require.Equal(t, "income", r.Lookup("income"))
	require.Equal(t, "age", r.Lookup("age"))
}

func TestRequireListsAllMissing(t *testing.T) {
	r := schema.NewResolver([]string{"age", "sex"})
	err := r.Require("age", "sex", "income", "occupation")
	require.Error(t, err)

	var missing *schema.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, []string{"income", "occupation"}, missing.Columns)

	require.NoError(t, r.Require("age", "sex"))
}
