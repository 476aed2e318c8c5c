package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meme-studio/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	saigon := time.FixedZone("ICT", 7*60*60)

	cases := map[string]struct {
		value time.Time
		want  string
	}{
		"UTC":          {time.Date(2023, 4, 27, 9, 15, 0, 0, time.UTC), `"2023-04-27T09:15:00Z"`},
		"Other Zone":   {time.Date(2023, 4, 27, 9, 15, 0, 0, saigon), `"2023-04-27T02:15:00Z"`},
		"Drops Nanos":  {time.Date(2023, 4, 27, 9, 15, 7, 999, time.UTC), `"2023-04-27T09:15:07Z"`},
		"Zero Is Null": {time.Time{}, `null`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tc.value))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))
		})
	}
}

func TestDateTimeParsesAsTime(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := json.Marshal(struct {
		CreatedAt response.DateTime `json:"created_at"`
	}{response.DateTime(created)})
	require.NoError(t, err)

	var got struct {
		CreatedAt time.Time `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.True(t, created.Equal(got.CreatedAt))
}
