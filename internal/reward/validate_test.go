package reward

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raygaledev/gold-starz/internal/form"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   Form
		want Draft
		errs map[string]string
	}{
		{
			name: "ok",
			in:   Form{Description: "Movie", Stars: "50"},
			want: Draft{Description: "Movie", Stars: 50},
		},
		{
			name: "missing description",
			in:   Form{Description: "", Stars: "50"},
			errs: map[string]string{"description": "Description is required"},
		},
		{
			name: "description too long",
			in:   Form{Description: strings.Repeat("x", MaxDescriptionLen+1), Stars: "50"},
			errs: map[string]string{"description": "Description must be at most 140 characters"},
		},
		{
			name: "stars missing",
			in:   Form{Description: "Movie"},
			errs: map[string]string{"stars": "Stars are required"},
		},
		{
			name: "stars not a number",
			in:   Form{Description: "Movie", Stars: "5O"},
			errs: map[string]string{"stars": "Stars must be a number"},
		},
		{
			name: "stars out of range",
			in:   Form{Description: "Movie", Stars: "0"},
			errs: map[string]string{"stars": "Stars must be between 1 and 9999999"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Validate(tc.in)
			if tc.errs == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			var errs form.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tc.errs, errs.ByField())
			assert.Equal(t, Draft{}, got)
		})
	}
}

func TestFormFor_RoundTripsThroughValidate(t *testing.T) {
	r := Reward{ID: 4, Description: "Ice cream", Stars: 12}

	f := FormFor(r)
	assert.Equal(t, Form{Description: "Ice cream", Stars: "12"}, f)

	d, err := Validate(f)
	require.NoError(t, err)
	assert.Equal(t, Draft{Description: "Ice cream", Stars: 12}, d)
}
