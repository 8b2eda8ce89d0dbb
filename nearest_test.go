package rtree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrioritySearch(t *testing.T) {
	for _, population := range []int{0, 1, 5, 50, 200} {
		t.Run(fmt.Sprintf("pop_%d", population), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(0))
			rt, err := New(4, 2, 2)
			require.NoError(t, err)
			var points []Entry
			for i := 0; i < population; i++ {
				p := randomPoint(rnd, 2)
				points = append(points, p)
				require.NoError(t, rt.Insert(p))
			}

			origin := randomQuery(rnd, 2)
			var got []Entry
			prev := -1.0
			err = rt.PrioritySearch(origin, func(e Entry) error {
				d := squaredDistance(pointBox(e.Coordinates()), origin)
				require.GreaterOrEqual(t, d, prev, "entries out of distance order")
				prev = d
				got = append(got, e)
				return nil
			})
			require.NoError(t, err)
			assert.ElementsMatch(t, points, got)
		})
	}
}

func TestPrioritySearchStop(t *testing.T) {
	rt, err := New(2, 1, 1)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, rt.Insert(Point{float64(i)}))
	}

	var got []Entry
	err = rt.PrioritySearch(Box{{7.2, 7.2}}, func(e Entry) error {
		got = append(got, e)
		if len(got) == 3 {
			return Stop
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []Entry{Point{7}, Point{8}, Point{6}}, got)
}
